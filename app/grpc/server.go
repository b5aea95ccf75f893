package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/service"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type trackingReader interface {
	Tracking(ctx context.Context, paymentID string) (*entity.PaymentTracking, bool, error)
}

type Server struct {
	types.UnimplementedBillingServiceServer
	payments trackingReader
}

func NewServer(payments trackingReader) *Server {
	return &Server{payments: payments}
}

func (s *Server) ListPlans(_ context.Context, _ *types.ListPlansRequest) (*types.ListPlansResponse, error) {
	return &types.ListPlansResponse{Plans: mapper.PlansToProto(entitlement.Catalog())}, nil
}

func (s *Server) EvaluateGoal(_ context.Context, req *types.EvaluateRequest) (*types.DecisionResponse, error) {
	return s.evaluate(req, entitlement.KindGoals, req.GetActiveGoals())
}

func (s *Server) EvaluateChallenge(_ context.Context, req *types.EvaluateRequest) (*types.DecisionResponse, error) {
	return s.evaluate(req, entitlement.KindChallenges, req.GetCreatedChallenges())
}

func (s *Server) GetUpgradeSuggestion(_ context.Context, req *types.EvaluateRequest) (*types.UpgradeSuggestionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	plan, _ := entity.ParsePlanTier(req.GetPlan())
	return &types.UpgradeSuggestionResponse{
		Plan:       string(plan),
		Suggestion: mapper.SuggestionToProto(entitlement.GetUpgradeSuggestion(plan)),
	}, nil
}

func (s *Server) GetPaymentTracking(ctx context.Context, req *types.PaymentTrackingRequest) (*types.PaymentTrackingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	item, live, err := s.payments.Tracking(ctx, req.GetPaymentId())
	if err != nil {
		if errors.Is(err, service.ErrTrackingNotFound) {
			return nil, status.Error(codes.NotFound, "payment tracking not found")
		}
		loggerWithContext(ctx).WithError(err).WithField("payment_id", req.GetPaymentId()).Error("Get payment tracking failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return &types.PaymentTrackingResponse{Tracking: mapper.PaymentTrackingToProto(item, live)}, nil
}

func (s *Server) evaluate(req *types.EvaluateRequest, kind entitlement.Kind, count int32) (*types.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	plan, _ := entity.ParsePlanTier(req.GetPlan())
	return &types.DecisionResponse{
		Kind:     string(kind),
		Plan:     string(plan),
		Count:    count,
		Decision: mapper.DecisionToProto(entitlement.Check(kind, plan, int(count))),
	}, nil
}
