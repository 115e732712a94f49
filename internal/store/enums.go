package store

// Profile role ENUMs
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Reward ENUMs
const (
	RewardStatusAvailable = "available"
	RewardStatusClaimed   = "claimed"
)

const (
	RewardKindMilestone   = "milestone"
	RewardKindTierUpgrade = "tier_upgrade"
	RewardKindReferral    = "referral"
	RewardKindBirthday    = "birthday"
)

const RewardApplicableToAll = "all"

// Order ENUMs
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
)

// Tier ENUMs
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)
