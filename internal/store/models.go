package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// RawJSON is a JSONB column kept as undecoded bytes
type RawJSON json.RawMessage

// Value implements the driver.Valuer interface for RawJSON
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (j *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New("incompatible type for RawJSON")
	}
	return nil
}

// MarshalJSON emits the stored document unchanged
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// StringArray is a PostgreSQL text[] column. Encoding and decoding go through
// pgx's array codec, so elements are quoted and escaped as needed.
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(a), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text array: %w", err)
	}
	return string(buf), nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch value.(type) {
	case []byte, string:
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	var out []string
	if err := pgtype.NewMap().SQLScanner(&out).Scan(value); err != nil {
		return fmt.Errorf("failed to decode text array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}

// Contains reports whether the array holds s
func (a StringArray) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// OrderItem is one line of an order
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderItems is stored as a JSONB array
type OrderItems []OrderItem

// Value implements the driver.Valuer interface for OrderItems
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// Scan implements the sql.Scanner interface for OrderItems
func (o *OrderItems) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*o = OrderItems{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for OrderItems")
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*o = OrderItems{}
		return nil
	}
	return json.Unmarshal(bytes, o)
}

type Profile struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Email        string      `db:"email" json:"email"`
	FullName     *string     `db:"full_name" json:"full_name,omitempty"`
	Phone        *string     `db:"phone" json:"phone,omitempty"`
	DateOfBirth  *time.Time  `db:"date_of_birth" json:"date_of_birth,omitempty"`
	ReferralCode string      `db:"referral_code" json:"referral_code"`
	ReferredBy   *string     `db:"referred_by" json:"referred_by,omitempty"`
	Roles        StringArray `db:"roles" json:"roles"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type CustomerStats struct {
	CustomerID    uuid.UUID  `db:"customer_id" json:"customer_id"`
	TotalVisits   int        `db:"total_visits" json:"total_visits"`
	CurrentTier   string     `db:"current_tier" json:"current_tier"`
	TierUpdatedAt *time.Time `db:"tier_updated_at" json:"tier_updated_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type Visit struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	CustomerID uuid.UUID  `db:"customer_id" json:"customer_id"`
	StaffID    *uuid.UUID `db:"staff_id" json:"staff_id,omitempty"`
	OrderID    *uuid.UUID `db:"order_id" json:"order_id,omitempty"`
	Notes      *string    `db:"notes" json:"notes,omitempty"`
	VisitedAt  time.Time  `db:"visited_at" json:"visited_at"`
}

type Reward struct {
	ID                 uuid.UUID        `db:"id" json:"id"`
	CustomerID         uuid.UUID        `db:"customer_id" json:"customer_id"`
	Title              string           `db:"title" json:"title"`
	Description        string           `db:"description" json:"description"`
	Kind               string           `db:"kind" json:"kind"`
	RewardValue        *decimal.Decimal `db:"reward_value" json:"reward_value,omitempty"`
	DiscountPercentage *decimal.Decimal `db:"discount_percentage" json:"discount_percentage,omitempty"`
	MinimumOrderValue  decimal.Decimal  `db:"minimum_order_value" json:"minimum_order_value"`
	ApplicableTo       string           `db:"applicable_to" json:"applicable_to"`
	ExpirationDate     *time.Time       `db:"expiration_date" json:"expiration_date,omitempty"`
	Status             string           `db:"status" json:"status"`
	MilestoneVisits    *int             `db:"milestone_visits" json:"milestone_visits,omitempty"`
	FromTier           *string          `db:"from_tier" json:"from_tier,omitempty"`
	ToTier             *string          `db:"to_tier" json:"to_tier,omitempty"`
	ReferredID         *uuid.UUID       `db:"referred_id" json:"referred_id,omitempty"`
	BirthdayYear       *int             `db:"birthday_year" json:"birthday_year,omitempty"`
	OrderID            *uuid.UUID       `db:"order_id" json:"order_id,omitempty"`
	ClaimedAt          *time.Time       `db:"claimed_at" json:"claimed_at,omitempty"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at" json:"updated_at"`
}

type Referral struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ReferrerID    uuid.UUID `db:"referrer_id" json:"referrer_id"`
	ReferredID    uuid.UUID `db:"referred_id" json:"referred_id"`
	ReferralCode  string    `db:"referral_code" json:"referral_code"`
	RewardGranted bool      `db:"reward_granted" json:"reward_granted"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type Order struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	CustomerID     *uuid.UUID      `db:"customer_id" json:"customer_id,omitempty"`
	TableNumber    string          `db:"table_number" json:"table_number"`
	Items          OrderItems      `db:"items" json:"items"`
	OriginalAmount decimal.Decimal `db:"original_amount" json:"original_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	RewardID       *uuid.UUID      `db:"reward_id" json:"reward_id,omitempty"`
	Status         string          `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
	DeliveredAt    *time.Time      `db:"delivered_at" json:"delivered_at,omitempty"`
}

type Setting struct {
	Key       string     `db:"key" json:"key"`
	Value     RawJSON    `db:"value" json:"value"`
	UpdatedBy *uuid.UUID `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
