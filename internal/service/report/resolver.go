package report

import (
	"github.com/glowmark/retailops-backend-go/internal/domain/branch"
	"github.com/glowmark/retailops-backend-go/internal/domain/ordertype"
	"github.com/glowmark/retailops-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// PercentResolver is the one authoritative place the percent-override
// precedence is encoded:
//
//  1. per-user custom percent for the order type
//  2. order type's default employee percent
//  3. per-user custom percent for the branch
//  4. user's global default percent
//
// It always resolves to a value and never errors; missing overrides fall
// through to the next level.
type PercentResolver struct {
	typeSettings      map[string]map[string]*decimal.Decimal // user id -> order type id -> custom percent
	branchAssignments map[string]map[string]*decimal.Decimal // user id -> branch id -> custom percent
	orderTypes        map[string]ordertype.OrderType
}

func NewPercentResolver(
	orderTypes map[string]ordertype.OrderType,
	typeSettings []ordertype.UserTypeSetting,
	branchAssignments []branch.UserBranchAssignment,
) *PercentResolver {
	r := &PercentResolver{
		typeSettings:      make(map[string]map[string]*decimal.Decimal),
		branchAssignments: make(map[string]map[string]*decimal.Decimal),
		orderTypes:        orderTypes,
	}
	for _, s := range typeSettings {
		if r.typeSettings[s.UserID] == nil {
			r.typeSettings[s.UserID] = make(map[string]*decimal.Decimal)
		}
		r.typeSettings[s.UserID][s.OrderTypeID] = s.CustomPercent
	}
	for _, a := range branchAssignments {
		if r.branchAssignments[a.UserID] == nil {
			r.branchAssignments[a.UserID] = make(map[string]*decimal.Decimal)
		}
		r.branchAssignments[a.UserID][a.BranchID] = a.CustomPercent
	}
	return r
}

// Resolve returns the effective percent rate for (user, order type, branch).
// Pass a nil orderTypeID for the user's base rate on a branch; the resolver
// is consulted per order-type split, so one order can apply two different
// rates to the same manager.
func (r *PercentResolver) Resolve(u user.User, orderTypeID *string, branchID *string) decimal.Decimal {
	if orderTypeID != nil {
		if byType, ok := r.typeSettings[u.ID]; ok {
			if custom, ok := byType[*orderTypeID]; ok && custom != nil {
				return *custom
			}
		}
		if t, ok := r.orderTypes[*orderTypeID]; ok && t.DefaultEmployeePercent != nil {
			return *t.DefaultEmployeePercent
		}
	}

	if branchID != nil {
		if byBranch, ok := r.branchAssignments[u.ID]; ok {
			if custom, ok := byBranch[*branchID]; ok && custom != nil {
				return *custom
			}
		}
	}

	return u.DefaultPercent
}

// Commission returns the commission percent of an order type, falling back
// to 100 when the type row is gone (orders predating typed splits).
func (r *PercentResolver) Commission(orderTypeID string) decimal.Decimal {
	if t, ok := r.orderTypes[orderTypeID]; ok {
		return t.CommissionPercent
	}
	return decimal.NewFromInt(100)
}

// IncludeInEmployeeSalary reports whether a type's revenue counts toward the
// employee cashbox base. Unknown types count (legacy behaviour).
func (r *PercentResolver) IncludeInEmployeeSalary(orderTypeID string) bool {
	if t, ok := r.orderTypes[orderTypeID]; ok {
		return t.IncludeInEmployeeSalary
	}
	return true
}

// TypeName resolves a display name for breakdowns.
func (r *PercentResolver) TypeName(orderTypeID string) string {
	if t, ok := r.orderTypes[orderTypeID]; ok {
		return t.Name
	}
	return "Untyped"
}
