package events

import (
	"time"

	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// Event types
const (
	TypeVisitRecorded      = "visit.recorded"
	TypeTierUpgraded       = "tier.upgraded"
	TypeRewardEarned       = "reward.earned"
	TypeRewardClaimed      = "reward.claimed"
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
	TypeReferralCreated    = "referral.created"
	TypeProfileRoleAdded   = "profile.role_added"
)

// Event is one domain event before it is wrapped in the wire envelope.
// CustomerID is the partition key.
type Event struct {
	Type       string
	CustomerID uuid.UUID
	Data       map[string]interface{}
}

func VisitRecorded(visit store.Visit, stats store.CustomerStats) Event {
	data := map[string]interface{}{
		"visit_id":     visit.ID.String(),
		"total_visits": stats.TotalVisits,
		"current_tier": stats.CurrentTier,
	}
	if visit.StaffID != nil {
		data["staff_id"] = visit.StaffID.String()
	}
	if visit.OrderID != nil {
		data["order_id"] = visit.OrderID.String()
	}
	return Event{Type: TypeVisitRecorded, CustomerID: visit.CustomerID, Data: data}
}

func TierUpgraded(customerID uuid.UUID, from, to string, totalVisits int) Event {
	return Event{
		Type:       TypeTierUpgraded,
		CustomerID: customerID,
		Data: map[string]interface{}{
			"from_tier":    from,
			"to_tier":      to,
			"total_visits": totalVisits,
		},
	}
}

func RewardEarned(reward store.Reward) Event {
	data := map[string]interface{}{
		"reward_id": reward.ID.String(),
		"kind":      reward.Kind,
		"title":     reward.Title,
	}
	if reward.RewardValue != nil {
		data["reward_value"] = reward.RewardValue.String()
	}
	if reward.DiscountPercentage != nil {
		data["discount_percentage"] = reward.DiscountPercentage.String()
	}
	if reward.ExpirationDate != nil {
		data["expiration_date"] = reward.ExpirationDate.UTC().Format(time.RFC3339)
	}
	return Event{Type: TypeRewardEarned, CustomerID: reward.CustomerID, Data: data}
}

func RewardClaimed(rewardID, customerID uuid.UUID, orderID *uuid.UUID) Event {
	data := map[string]interface{}{"reward_id": rewardID.String()}
	if orderID != nil {
		data["order_id"] = orderID.String()
	}
	return Event{Type: TypeRewardClaimed, CustomerID: customerID, Data: data}
}

func OrderCreated(order store.Order) Event {
	data := map[string]interface{}{
		"order_id":        order.ID.String(),
		"table_number":    order.TableNumber,
		"original_amount": order.OriginalAmount.StringFixed(2),
		"discount_amount": order.DiscountAmount.StringFixed(2),
		"total_amount":    order.TotalAmount.StringFixed(2),
		"item_count":      len(order.Items),
	}
	if order.RewardID != nil {
		data["reward_id"] = order.RewardID.String()
	}
	return Event{Type: TypeOrderCreated, CustomerID: orderCustomer(order), Data: data}
}

func OrderStatusChanged(order store.Order, from string) Event {
	return Event{
		Type:       TypeOrderStatusChanged,
		CustomerID: orderCustomer(order),
		Data: map[string]interface{}{
			"order_id":    order.ID.String(),
			"from_status": from,
			"to_status":   order.Status,
		},
	}
}

func ReferralCreated(referral store.Referral) Event {
	return Event{
		Type:       TypeReferralCreated,
		CustomerID: referral.ReferrerID,
		Data: map[string]interface{}{
			"referral_id":    referral.ID.String(),
			"referred_id":    referral.ReferredID.String(),
			"referral_code":  referral.ReferralCode,
			"reward_granted": referral.RewardGranted,
		},
	}
}

func ProfileRoleAdded(profileID uuid.UUID, role string, grantedBy uuid.UUID) Event {
	return Event{
		Type:       TypeProfileRoleAdded,
		CustomerID: profileID,
		Data: map[string]interface{}{
			"role":       role,
			"granted_by": grantedBy.String(),
		},
	}
}

// Anonymous orders are keyed by the nil UUID.
func orderCustomer(order store.Order) uuid.UUID {
	if order.CustomerID == nil {
		return uuid.Nil
	}
	return *order.CustomerID
}
