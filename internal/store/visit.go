package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateVisitParams represents parameters for logging a visit
type CreateVisitParams struct {
	CustomerID uuid.UUID
	StaffID    *uuid.UUID
	OrderID    *uuid.UUID
	Notes      *string
}

const sqlCreateVisit = `
INSERT INTO visits (customer_id, staff_id, order_id, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, customer_id, staff_id, order_id, notes, visited_at
`

// CreateVisit appends a visit record
func (s *Store) CreateVisit(ctx context.Context, params CreateVisitParams) (Visit, error) {
	var visit Visit
	err := s.db.GetContext(ctx, &visit, sqlCreateVisit, params.CustomerID, params.StaffID, params.OrderID, params.Notes)
	if err != nil {
		return Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}
	return visit, nil
}

const sqlListVisitsByCustomer = `
SELECT id, customer_id, staff_id, order_id, notes, visited_at
FROM visits
WHERE customer_id = $1
ORDER BY visited_at DESC
LIMIT $2 OFFSET $3
`

// ListVisitsByCustomer returns a customer's visits, newest first
func (s *Store) ListVisitsByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]Visit, error) {
	var visits []Visit
	if err := s.db.SelectContext(ctx, &visits, sqlListVisitsByCustomer, customerID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}
