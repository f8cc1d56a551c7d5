package commands

import (
	"errors"
	"fmt"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor id is required for this action")
)

// Role identifies who is attempting a lifecycle transition.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota
	// RoleAdmin is a pharmacy operator.
	RoleAdmin
	// RoleRider is a delivery rider acting on their own orders.
	RoleRider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleRider:   "rider",
	}
}

// RoleFromString converts a transport-level role string to a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the transport string for the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is a member of the closed enum.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Action names one lifecycle transition from the transition table.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota
	// ActionConfirm confirms a pending order (admin).
	ActionConfirm
	// ActionPrepare starts preparing a confirmed order (admin, silent).
	ActionPrepare
	// ActionMarkReady marks a preparing order ready for pickup (admin).
	ActionMarkReady
	// ActionAssignRider binds a rider to a ready order (admin).
	ActionAssignRider
	// ActionConfirmPickup confirms the rider left with the order (rider).
	ActionConfirmPickup
	// ActionMarkDelivered records proof of delivery (rider).
	ActionMarkDelivered
	// ActionConfirmDelivery closes the order after review (admin, silent).
	ActionConfirmDelivery
	// ActionReject cancels an undelivered order (admin).
	ActionReject
	// ActionArchive hides a terminal order from default listings (admin).
	ActionArchive
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:         "unknown",
		ActionConfirm:         "confirm",
		ActionPrepare:         "prepare",
		ActionMarkReady:       "mark_ready",
		ActionAssignRider:     "assign_rider",
		ActionConfirmPickup:   "confirm_pickup",
		ActionMarkDelivered:   "mark_delivered",
		ActionConfirmDelivery: "confirm_delivery",
		ActionReject:          "reject",
		ActionArchive:         "archive",
	}
}

// ActionFromString converts a transport-level action string to an Action.
func ActionFromString(s string) (Action, error) {
	for action, str := range getActionStrings() {
		if str == s && action != ActionUnknown {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid action", s))
}

// String returns the transport string for the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Action value is a member of the closed enum.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == ActionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// allowedRole returns the role permitted to perform the action.
func (a Action) allowedRole() Role {
	switch a {
	case ActionConfirmPickup, ActionMarkDelivered:
		return RoleRider
	default:
		return RoleAdmin
	}
}

// requiresActor reports whether the action needs an acting entity id.
func (a Action) requiresActor() bool {
	switch a {
	case ActionAssignRider, ActionConfirmPickup, ActionMarkDelivered:
		return true
	default:
		return false
	}
}

// TransitionOrderCommand represents a request to apply one lifecycle
// transition to an order. The acting role is checked against the transition
// table before the order is even loaded; a role mismatch is Forbidden, not
// StateConflict.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	role     Role
	action   Action
	actorID  *kernel.UUID
	photoURL string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition command.
// actorID is the rider performing a rider action or being assigned by an
// admin; it is required for assign_rider, confirm_pickup and mark_delivered.
// photoURL carries the proof-of-delivery photo for mark_delivered.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	role Role,
	action Action,
	actorID *kernel.UUID,
	photoURL string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		photoURL: photoURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
		cmd.setAction(action),
		cmd.setActorID(actorID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the acting role.
func (c TransitionOrderCommand) Role() Role {
	return c.role
}

// Action returns the requested transition.
func (c TransitionOrderCommand) Action() Action {
	return c.action
}

// ActorID returns the acting or assigned rider, when the action needs one.
func (c TransitionOrderCommand) ActorID() *kernel.UUID {
	return c.actorID
}

// PhotoURL returns the proof-of-delivery photo for mark_delivered.
func (c TransitionOrderCommand) PhotoURL() string {
	return c.photoURL
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *TransitionOrderCommand) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *TransitionOrderCommand) setActorID(actorID *kernel.UUID) error {
	if c.action.requiresActor() {
		if actorID == nil {
			return ErrActorIsRequired
		}
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
