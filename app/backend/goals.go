package backend

import (
	"context"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
)

func (c *Client) ListGoals(ctx context.Context) ([]*entity.Goal, error) {
	var resp []dto.GoalResponse
	if err := c.get(ctx, "/goals", &resp); err != nil {
		return nil, err
	}
	return mapper.GoalsFromDTO(resp), nil
}

func (c *Client) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*entity.Goal, error) {
	var resp dto.GoalResponse
	if err := c.post(ctx, "/goals", req, &resp); err != nil {
		return nil, err
	}
	return mapper.GoalFromDTO(&resp), nil
}

// ListChallenges returns the challenges the user participates in, including
// the ones they created.
func (c *Client) ListChallenges(ctx context.Context) ([]*entity.Challenge, error) {
	var resp []dto.ChallengeResponse
	if err := c.get(ctx, "/challenges", &resp); err != nil {
		return nil, err
	}
	return mapper.ChallengesFromDTO(resp), nil
}

func (c *Client) CreateChallenge(ctx context.Context, req *dto.CreateChallengeRequest) (*entity.Challenge, error) {
	var resp dto.ChallengeResponse
	if err := c.post(ctx, "/challenges", req, &resp); err != nil {
		return nil, err
	}
	return mapper.ChallengeFromDTO(&resp), nil
}
