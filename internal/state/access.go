package state

import "github.com/google/uuid"

// Action names a privileged operation requiring authorization.
type Action string

const (
	ActionUpdateParams Action = "update_params"
	ActionFlagAccount  Action = "flag_account"
)

// Feature names a user-facing operation family that can be paused.
type Feature string

const (
	FeatureDeposit   Feature = "deposit"
	FeatureWithdraw  Feature = "withdraw"
	FeatureBorrow    Feature = "borrow"
	FeatureRepay     Feature = "repay"
	FeatureLiquidate Feature = "liquidate"
	FeatureReward    Feature = "reward"
	FeatureFlashLoan Feature = "flashloan"
)

// AccessPolicy gates privileged actions and lets the operator pause
// operation families independently. The core consults it before every
// dispatch; the policy never mutates ledger state.
type AccessPolicy interface {
	IsAuthorized(caller uuid.UUID, action Action) bool
	IsPaused(feature Feature) bool
}

// OpenPolicy authorizes everyone and pauses nothing. Deployments plug
// their own policy in at wiring time.
type OpenPolicy struct{}

func (OpenPolicy) IsAuthorized(uuid.UUID, Action) bool { return true }
func (OpenPolicy) IsPaused(Feature) bool               { return false }

// StaticPolicy is a fixed admin allowlist with a pause set, suitable
// for configuration-driven deployments.
type StaticPolicy struct {
	Admins map[uuid.UUID]bool
	Paused map[Feature]bool
}

func (p *StaticPolicy) IsAuthorized(caller uuid.UUID, _ Action) bool {
	return p.Admins[caller]
}

func (p *StaticPolicy) IsPaused(f Feature) bool {
	return p.Paused[f]
}
