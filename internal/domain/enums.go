package domain

// Role identifies a user's class within the shop.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleManager     Role = "MANAGER"
	RoleCustomer    Role = "CUSTOMER"
	RoleB2BCustomer Role = "B2B_CUSTOMER"
)

// ValidRoles lists every role that may be assigned to a user record.
var ValidRoles = map[Role]bool{
	RoleAdmin:       true,
	RoleManager:     true,
	RoleCustomer:    true,
	RoleB2BCustomer: true,
}

// OrderStatus represents the lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// ValidOrderStatuses lists every order status accepted on status updates.
var ValidOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusPaid:       true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusRefunded:   true,
}

// RevenueStatuses is the set of statuses counted as revenue-generating
// when aggregating sales figures.
var RevenueStatuses = []OrderStatus{
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// AllowedStatusTransitions maps each order status to the statuses an admin
// may move it to. REFUNDED additionally requires the refund permission.
var AllowedStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusRefunded},
	OrderStatusDelivered:  {OrderStatusRefunded},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransitionOrder reports whether an order may move from one status to another.
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range AllowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
