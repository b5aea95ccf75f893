package types

// HTTP message types. The gRPC messages are generated from proto/billing.proto.

type CreateGoalRequest struct {
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Category      string  `json:"category"`
	Deadline      string  `json:"deadline"`
}

func (r *CreateGoalRequest) GetTitle() string {
	if r == nil {
		return ""
	}
	return r.Title
}

func (r *CreateGoalRequest) GetTargetAmount() float64 {
	if r == nil {
		return 0
	}
	return r.TargetAmount
}

func (r *CreateGoalRequest) GetCurrentAmount() float64 {
	if r == nil {
		return 0
	}
	return r.CurrentAmount
}

func (r *CreateGoalRequest) GetCategory() string {
	if r == nil {
		return ""
	}
	return r.Category
}

func (r *CreateGoalRequest) GetDeadline() string {
	if r == nil {
		return ""
	}
	return r.Deadline
}

type CreateChallengeRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	TargetAmount    float64 `json:"targetAmount"`
	Category        string  `json:"category"`
	Deadline        string  `json:"deadline"`
	MaxParticipants int32   `json:"maxParticipants"`
	RewardPoints    int32   `json:"rewardPoints"`
}

func (r *CreateChallengeRequest) GetTitle() string {
	if r == nil {
		return ""
	}
	return r.Title
}

func (r *CreateChallengeRequest) GetDescription() string {
	if r == nil {
		return ""
	}
	return r.Description
}

func (r *CreateChallengeRequest) GetTargetAmount() float64 {
	if r == nil {
		return 0
	}
	return r.TargetAmount
}

func (r *CreateChallengeRequest) GetCategory() string {
	if r == nil {
		return ""
	}
	return r.Category
}

func (r *CreateChallengeRequest) GetDeadline() string {
	if r == nil {
		return ""
	}
	return r.Deadline
}

func (r *CreateChallengeRequest) GetMaxParticipants() int32 {
	if r == nil {
		return 0
	}
	return r.MaxParticipants
}

func (r *CreateChallengeRequest) GetRewardPoints() int32 {
	if r == nil {
		return 0
	}
	return r.RewardPoints
}

type SelectPlanRequest struct {
	Plan string `json:"plan"`
}

func (r *SelectPlanRequest) GetPlan() string {
	if r == nil {
		return ""
	}
	return r.Plan
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EvaluateResponse struct {
	Plan       string             `json:"plan"`
	Goals      *Decision          `json:"goals"`
	Challenges *Decision          `json:"challenges"`
	Suggestion *UpgradeSuggestion `json:"suggestion"`
}

type Usage struct {
	ActiveGoals       int32 `json:"active_goals"`
	CreatedChallenges int32 `json:"created_challenges"`
}

type User struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Plan        string `json:"plan"`
	TotalPoints int64  `json:"total_points"`
	Level       int32  `json:"level"`
}

type EntitlementsResponse struct {
	User       *User              `json:"user"`
	Plan       string             `json:"plan"`
	Usage      *Usage             `json:"usage"`
	Goals      *Decision          `json:"goals"`
	Challenges *Decision          `json:"challenges"`
	Suggestion *UpgradeSuggestion `json:"suggestion"`
}

// LimitPrompt is the body of a 402 response.
type LimitPrompt struct {
	Error        string             `json:"error"`
	Kind         string             `json:"kind"`
	Title        string             `json:"title"`
	Badge        string             `json:"badge"`
	CurrentPlan  string             `json:"current_plan"`
	CurrentCount int32              `json:"current_count"`
	Decision     *Decision          `json:"decision"`
	Suggestion   *UpgradeSuggestion `json:"suggestion"`
	FromBackend  bool               `json:"from_backend"`
}

type Goal struct {
	Id                 string `json:"id"`
	Title              string `json:"title"`
	Category           string `json:"category"`
	Status             string `json:"status"`
	TargetAmountCents  int64  `json:"target_amount_cents"`
	CurrentAmountCents int64  `json:"current_amount_cents"`
	Deadline           string `json:"deadline,omitempty"`
	CreatedAt          string `json:"created_at"`
}

type GoalResponse struct {
	Goal *Goal `json:"goal"`
}

type Challenge struct {
	Id                string `json:"id"`
	CreatorId         string `json:"creator_id"`
	Title             string `json:"title"`
	Category          string `json:"category"`
	Status            string `json:"status"`
	TargetAmountCents int64  `json:"target_amount_cents"`
	MaxParticipants   int32  `json:"max_participants"`
	CreatedAt         string `json:"created_at"`
}

type ChallengeResponse struct {
	Challenge *Challenge `json:"challenge"`
}

type Payment struct {
	Id             string `json:"id"`
	SubscriptionId string `json:"subscription_id"`
	AmountCents    int64  `json:"amount_cents"`
	Status         string `json:"status"`
	PaymentMethod  string `json:"payment_method"`
	PaymentUrl     string `json:"payment_url,omitempty"`
	PixCode        string `json:"pix_code,omitempty"`
	PixQrCode      string `json:"pix_qr_code,omitempty"`
	PaidAt         string `json:"paid_at,omitempty"`
	ExpiresAt      string `json:"expires_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type SelectPlanResponse struct {
	Payment  *Payment `json:"payment"`
	Tracking bool     `json:"tracking"`
}

type Subscription struct {
	Id                 string `json:"id"`
	Plan               string `json:"plan"`
	Status             string `json:"status"`
	CurrentPeriodStart string `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   string `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
	CreatedAt          string `json:"created_at"`
}

type SubscriptionResponse struct {
	Subscription *Subscription `json:"subscription"`
}

type PaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

// CompletionResponse backs the payment completion pages. RedirectAfterMs is
// set once the payment is paid.
type CompletionResponse struct {
	PaymentId       string   `json:"payment_id"`
	Payment         *Payment `json:"payment"`
	Plan            string   `json:"plan,omitempty"`
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	RedirectAfterMs int64    `json:"redirect_after_ms,omitempty"`
}

// LookupErrorResponse is the error panel shown when a completion page cannot
// load its payment. Params echoes the sanitized query parameters.
type LookupErrorResponse struct {
	Error     string            `json:"error"`
	PaymentId string            `json:"payment_id,omitempty"`
	Params    map[string]string `json:"params"`
}
