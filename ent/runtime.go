// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yaronha/demo-llm-agent/ent/chatsession"
	"github.com/yaronha/demo-llm-agent/ent/doccollection"
	"github.com/yaronha/demo-llm-agent/ent/schema"
	"github.com/yaronha/demo-llm-agent/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[8].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[9].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	doccollectionFields := schema.DocCollection{}.Fields()
	_ = doccollectionFields
	// doccollectionDescCreatedAt is the schema descriptor for created_at field.
	doccollectionDescCreatedAt := doccollectionFields[6].Descriptor()
	// doccollection.DefaultCreatedAt holds the default value on creation for the created_at field.
	doccollection.DefaultCreatedAt = doccollectionDescCreatedAt.Default.(func() time.Time)
	// doccollectionDescUpdatedAt is the schema descriptor for updated_at field.
	doccollectionDescUpdatedAt := doccollectionFields[7].Descriptor()
	// doccollection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doccollection.DefaultUpdatedAt = doccollectionDescUpdatedAt.Default.(func() time.Time)
	// doccollection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doccollection.UpdateDefaultUpdatedAt = doccollectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
