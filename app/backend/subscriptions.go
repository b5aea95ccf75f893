package backend

import (
	"context"
	"net/url"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
)

// CreateSubscription starts an upgrade and returns the pending payment.
func (c *Client) CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*entity.Payment, error) {
	var resp dto.PaymentResponse
	if err := c.post(ctx, "/subscriptions", req, &resp); err != nil {
		return nil, err
	}
	return mapper.PaymentFromDTO(&resp), nil
}

func (c *Client) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	var resp []dto.SubscriptionResponse
	if err := c.get(ctx, "/subscriptions", &resp); err != nil {
		return nil, err
	}
	return mapper.SubscriptionsFromDTO(resp), nil
}

func (c *Client) ActiveSubscription(ctx context.Context) (*entity.Subscription, error) {
	var resp dto.SubscriptionResponse
	if err := c.get(ctx, "/subscriptions/active", &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, nil
	}
	return mapper.SubscriptionFromDTO(&resp), nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	return c.post(ctx, "/subscriptions/"+url.PathEscape(subscriptionID)+"/cancel", nil, nil)
}

func (c *Client) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	var resp []dto.PaymentResponse
	if err := c.get(ctx, "/subscriptions/payments", &resp); err != nil {
		return nil, err
	}
	return mapper.PaymentsFromDTO(resp), nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	var resp dto.PaymentResponse
	if err := c.get(ctx, "/subscriptions/payments/"+url.PathEscape(paymentID), &resp); err != nil {
		return nil, err
	}
	return mapper.PaymentFromDTO(&resp), nil
}
