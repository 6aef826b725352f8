package models

import "time"

// SubscriptionStatus is the lifecycle state of a stored subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// SubscriptionServiceEntry is one service line inside a subscription request,
// carrying the wire representation of schedule and category details.
type SubscriptionServiceEntry struct {
	ServiceID         string         `bson:"serviceId" json:"serviceId"`
	Frequency         string         `bson:"frequency" json:"frequency"`
	ScheduledDays     []string       `bson:"scheduledDays" json:"scheduledDays"`
	PreferredTimeSlot TimeSlot       `bson:"preferredTimeSlot" json:"preferredTimeSlot"`
	ServiceDetails    ServiceDetails `bson:"serviceDetails" json:"serviceDetails"`
	Price             int            `bson:"price" json:"price"`
}

// SubscriptionRequest is the terminal artifact of the wizard: everything the
// creation collaborator needs to open a subscription. Built once at submit
// time and discarded from wizard state afterwards.
type SubscriptionRequest struct {
	CustomerID   string                     `bson:"customerId" json:"customerId"`
	BillingCycle BillingCycle               `bson:"billingCycle" json:"billingCycle"`
	Duration     int                        `bson:"duration" json:"duration"`
	StartDate    string                     `bson:"startDate" json:"startDate"`
	AutoRenew    bool                       `bson:"autoRenew" json:"autoRenew"`
	Services     []SubscriptionServiceEntry `bson:"services" json:"services"`
	Plan         PlanAggregate              `bson:"plan" json:"plan"`
}

// Subscription is the persisted record created from a SubscriptionRequest.
type Subscription struct {
	ID           string                     `bson:"id" json:"id"`
	CustomerID   string                     `bson:"customerId" json:"customerId"`
	BillingCycle BillingCycle               `bson:"billingCycle" json:"billingCycle"`
	Duration     int                        `bson:"duration" json:"duration"`
	StartDate    string                     `bson:"startDate" json:"startDate"`
	AutoRenew    bool                       `bson:"autoRenew" json:"autoRenew"`
	Services     []SubscriptionServiceEntry `bson:"services" json:"services"`
	Subtotal     int                        `bson:"subtotal" json:"subtotal"`
	Discount     int                        `bson:"discount" json:"discount"`
	Total        int                        `bson:"total" json:"total"`
	PerPeriod    int                        `bson:"perPeriod" json:"perPeriod"`
	Status       SubscriptionStatus         `bson:"status" json:"status"`
	CreatedAt    time.Time                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time                  `bson:"updatedAt" json:"updatedAt"`
}
