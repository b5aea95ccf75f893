package dto

// Wire shapes of the InteliWallet REST API. Amounts are in reais.

type UserResponse struct {
	ID                     string `json:"id"`
	Username               string `json:"username"`
	Email                  string `json:"email"`
	Avatar                 string `json:"avatar,omitempty"`
	CreatedAt              string `json:"createdAt"`
	TotalPoints            int64  `json:"totalPoints"`
	Level                  int32  `json:"level"`
	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding,omitempty"`
	Plan                   string `json:"plan"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SubscriptionResponse struct {
	ID                 string `json:"id"`
	UserID             string `json:"userId"`
	Plan               string `json:"plan"`
	Status             string `json:"status"`
	CurrentPeriodStart string `json:"currentPeriodStart"`
	CurrentPeriodEnd   string `json:"currentPeriodEnd"`
	CancelAtPeriodEnd  bool   `json:"cancelAtPeriodEnd"`
	CreatedAt          string `json:"createdAt"`
}

type PaymentResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	SubscriptionID string  `json:"subscriptionId"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"paymentMethod"`
	PaymentURL     string  `json:"paymentUrl"`
	PixCode        *string `json:"pixCode"`
	PixQrCode      *string `json:"pixQrCode"`
	PaidAt         *string `json:"paidAt"`
	ExpiresAt      string  `json:"expiresAt"`
	CreatedAt      string  `json:"createdAt"`
}

type CreateSubscriptionRequest struct {
	Plan          string `json:"plan"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	ReturnURL     string `json:"returnUrl,omitempty"`
	CompletionURL string `json:"completionUrl,omitempty"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Category      string  `json:"category"`
	Deadline      string  `json:"deadline"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

type CreateGoalRequest struct {
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount,omitempty"`
	Category      string  `json:"category"`
	Deadline      string  `json:"deadline"`
}

type ChallengeCreator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type ChallengeResponse struct {
	ID              string           `json:"id"`
	Creator         ChallengeCreator `json:"creator"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	TargetAmount    float64          `json:"targetAmount"`
	CurrentAmount   float64          `json:"currentAmount"`
	Category        string           `json:"category"`
	Deadline        string           `json:"deadline"`
	Status          string           `json:"status"`
	MaxParticipants int32            `json:"maxParticipants"`
	RewardPoints    int32            `json:"rewardPoints"`
	CreatedAt       string           `json:"createdAt"`
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

// ErrorResponse is the error body the API returns on non-2xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}
