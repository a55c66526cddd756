package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Host rules model event types.
const (
	// TypeHostRulesUpdate creates or updates a host rule.
	TypeHostRulesUpdate event.Type = "hostrulesupdate"

	// TypeHostRulesUpdateBulk creates or updates host rules.
	TypeHostRulesUpdateBulk event.Type = "hostrulesupdatebulk"

	// TypeHostRulesDelete deletes a host rule.
	TypeHostRulesDelete event.Type = "hostrulesdelete"

	// TypeHostRulesList lists host rules.
	TypeHostRulesList event.Type = "hostruleslist"

	// TypeHostRulesClear removes every host rule.
	TypeHostRulesClear event.Type = "hostrulesclear"

	// TypeHostRulesStateUpdate announces a stored host rule.
	TypeHostRulesStateUpdate event.Type = "hostrulesstateupdate"

	// TypeHostRulesStateDelete announces a removed host rule.
	TypeHostRulesStateDelete event.Type = "hostrulesstatedelete"

	// TypeHostRulesStateClear announces that every host rule was removed.
	TypeHostRulesStateClear event.Type = "hostrulesstateclear"
)

// HostRulesUpdateDetail is the detail of Model.HostRules.update.
type HostRulesUpdateDetail struct {
	Rule HostRule `json:"rule"`
}

// NewHostRulesUpdateEvent creates the Model.HostRules.update request.
func NewHostRulesUpdateEvent(rule HostRule, opts ...event.Option) *event.Request[HostRulesUpdateDetail, *ChangeRecord[HostRule]] {
	return event.NewRequest[HostRulesUpdateDetail, *ChangeRecord[HostRule]](TypeHostRulesUpdate, HostRulesUpdateDetail{Rule: rule}, opts...)
}

// HostRulesUpdate stores rule.
func HostRulesUpdate(ctx context.Context, d event.Dispatcher, rule HostRule) (*ChangeRecord[HostRule], error) {
	return event.Call(ctx, d, NewHostRulesUpdateEvent(rule))
}

// HostRulesUpdateBulkDetail is the detail of Model.HostRules.updateBulk.
type HostRulesUpdateBulkDetail struct {
	Rules []HostRule `json:"rules"`
}

// NewHostRulesUpdateBulkEvent creates the Model.HostRules.updateBulk
// request.
func NewHostRulesUpdateBulkEvent(rules []HostRule, opts ...event.Option) *event.Request[HostRulesUpdateBulkDetail, []ChangeRecord[HostRule]] {
	return event.NewRequest[HostRulesUpdateBulkDetail, []ChangeRecord[HostRule]](TypeHostRulesUpdateBulk, HostRulesUpdateBulkDetail{Rules: rules}, opts...)
}

// HostRulesUpdateBulk stores rules.
func HostRulesUpdateBulk(ctx context.Context, d event.Dispatcher, rules []HostRule) ([]ChangeRecord[HostRule], error) {
	return event.Call(ctx, d, NewHostRulesUpdateBulkEvent(rules))
}

// HostRulesDeleteDetail is the detail of Model.HostRules.delete.
type HostRulesDeleteDetail struct {
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// NewHostRulesDeleteEvent creates the Model.HostRules.delete request.
func NewHostRulesDeleteEvent(id, rev string, opts ...event.Option) *event.Request[HostRulesDeleteDetail, *DeletedRecord] {
	return event.NewRequest[HostRulesDeleteDetail, *DeletedRecord](TypeHostRulesDelete, HostRulesDeleteDetail{ID: id, Rev: rev}, opts...)
}

// HostRulesDelete removes the rule with the given id. An empty rev removes
// the latest revision.
func HostRulesDelete(ctx context.Context, d event.Dispatcher, id, rev string) (*DeletedRecord, error) {
	return event.Call(ctx, d, NewHostRulesDeleteEvent(id, rev))
}

// HostRulesListDetail is the detail of Model.HostRules.list.
type HostRulesListDetail struct {
	Limit         int    `json:"limit"`
	NextPageToken string `json:"nextPageToken"`
}

// NewHostRulesListEvent creates the Model.HostRules.list request.
func NewHostRulesListEvent(limit int, nextPageToken string, opts ...event.Option) *event.Request[HostRulesListDetail, *ListResponse[HostRule]] {
	return event.NewRequest[HostRulesListDetail, *ListResponse[HostRule]](TypeHostRulesList, HostRulesListDetail{Limit: limit, NextPageToken: nextPageToken}, opts...)
}

// HostRulesList returns a page of host rules.
func HostRulesList(ctx context.Context, d event.Dispatcher, limit int, nextPageToken string) (*ListResponse[HostRule], error) {
	return event.Call(ctx, d, NewHostRulesListEvent(limit, nextPageToken))
}

// NewHostRulesClearEvent creates the Model.HostRules.clear request.
func NewHostRulesClearEvent(opts ...event.Option) *event.Request[Empty, event.Void] {
	return event.NewRequest[Empty, event.Void](TypeHostRulesClear, Empty{}, opts...)
}

// HostRulesClear removes every host rule.
func HostRulesClear(ctx context.Context, d event.Dispatcher) error {
	return event.Perform(ctx, d, NewHostRulesClearEvent())
}

// HostRulesStateUpdateDetail is the detail of Model.HostRules.State.update.
type HostRulesStateUpdateDetail struct {
	Record ChangeRecord[HostRule] `json:"record"`
}

// NewHostRulesStateUpdateEvent creates the Model.HostRules.State.update
// notification.
func NewHostRulesStateUpdateEvent(record ChangeRecord[HostRule], opts ...event.Option) *event.Notification[HostRulesStateUpdateDetail] {
	return event.NewNotification(TypeHostRulesStateUpdate, HostRulesStateUpdateDetail{Record: record}, opts...)
}

// HostRulesStateUpdate announces that a rule was stored.
func HostRulesStateUpdate(ctx context.Context, d event.Dispatcher, record ChangeRecord[HostRule]) error {
	return event.Notify(ctx, d, NewHostRulesStateUpdateEvent(record))
}

// HostRulesStateDeleteDetail is the detail of Model.HostRules.State.delete.
type HostRulesStateDeleteDetail struct {
	Record DeletedRecord `json:"record"`
}

// NewHostRulesStateDeleteEvent creates the Model.HostRules.State.delete
// notification.
func NewHostRulesStateDeleteEvent(record DeletedRecord, opts ...event.Option) *event.Notification[HostRulesStateDeleteDetail] {
	return event.NewNotification(TypeHostRulesStateDelete, HostRulesStateDeleteDetail{Record: record}, opts...)
}

// HostRulesStateDelete announces that a rule was removed.
func HostRulesStateDelete(ctx context.Context, d event.Dispatcher, record DeletedRecord) error {
	return event.Notify(ctx, d, NewHostRulesStateDeleteEvent(record))
}

// NewHostRulesStateClearEvent creates the Model.HostRules.State.clear
// notification.
func NewHostRulesStateClearEvent(opts ...event.Option) *event.Notification[Empty] {
	return event.NewNotification(TypeHostRulesStateClear, Empty{}, opts...)
}

// HostRulesStateClear announces that the host rules store was cleared.
func HostRulesStateClear(ctx context.Context, d event.Dispatcher) error {
	return event.Notify(ctx, d, NewHostRulesStateClearEvent())
}

func hostRulesEntries() []Entry {
	return []Entry{
		requestEntry[HostRulesUpdateDetail, *ChangeRecord[HostRule]]("Model.HostRules.update", TypeHostRulesUpdate),
		requestEntry[HostRulesUpdateBulkDetail, []ChangeRecord[HostRule]]("Model.HostRules.updateBulk", TypeHostRulesUpdateBulk),
		requestEntry[HostRulesDeleteDetail, *DeletedRecord]("Model.HostRules.delete", TypeHostRulesDelete),
		requestEntry[HostRulesListDetail, *ListResponse[HostRule]]("Model.HostRules.list", TypeHostRulesList),
		requestEntry[Empty, event.Void]("Model.HostRules.clear", TypeHostRulesClear),
		notificationEntry[HostRulesStateUpdateDetail]("Model.HostRules.State.update", TypeHostRulesStateUpdate),
		notificationEntry[HostRulesStateDeleteDetail]("Model.HostRules.State.delete", TypeHostRulesStateDelete),
		notificationEntry[Empty]("Model.HostRules.State.clear", TypeHostRulesStateClear),
	}
}
