// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rnnlab/rnncourse/ent/activityevent"
	"github.com/rnnlab/rnncourse/ent/badgeevent"
	"github.com/rnnlab/rnncourse/ent/schema"
	"github.com/rnnlab/rnncourse/ent/stateblob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[0].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescPoints is the schema descriptor for points field.
	activityeventDescPoints := activityeventFields[4].Descriptor()
	// activityevent.DefaultPoints holds the default value on creation for the points field.
	activityevent.DefaultPoints = activityeventDescPoints.Default.(int)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescRarity is the schema descriptor for rarity field.
	badgeeventDescRarity := badgeeventFields[1].Descriptor()
	// badgeevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	badgeevent.RarityValidator = badgeeventDescRarity.Validators[0].(func(string) error)
	// badgeeventDescCategory is the schema descriptor for category field.
	badgeeventDescCategory := badgeeventFields[2].Descriptor()
	// badgeevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	badgeevent.CategoryValidator = badgeeventDescCategory.Validators[0].(func(string) error)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[3].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	stateblobFields := schema.StateBlob{}.Fields()
	_ = stateblobFields
	// stateblobDescKey is the schema descriptor for key field.
	stateblobDescKey := stateblobFields[0].Descriptor()
	// stateblob.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	stateblob.KeyValidator = stateblobDescKey.Validators[0].(func(string) error)
	// stateblobDescUpdatedAt is the schema descriptor for updated_at field.
	stateblobDescUpdatedAt := stateblobFields[2].Descriptor()
	// stateblob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateblob.DefaultUpdatedAt = stateblobDescUpdatedAt.Default.(func() time.Time)
	// stateblob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateblob.UpdateDefaultUpdatedAt = stateblobDescUpdatedAt.UpdateDefault.(func() time.Time)
}
