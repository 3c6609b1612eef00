// Code generated by ent, DO NOT EDIT.

package doccollection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yaronha/demo-llm-agent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContainsFold(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldDescription, v))
}

// OwnerName applies equality check predicate on the "owner_name" field. It's identical to OwnerNameEQ.
func OwnerName(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldOwnerName, v))
}

// DbCategory applies equality check predicate on the "db_category" field. It's identical to DbCategoryEQ.
func DbCategory(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldDbCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldUpdatedAt, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContainsFold(FieldDescription, v))
}

// OwnerNameEQ applies the EQ predicate on the "owner_name" field.
func OwnerNameEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldOwnerName, v))
}

// OwnerNameNEQ applies the NEQ predicate on the "owner_name" field.
func OwnerNameNEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldOwnerName, v))
}

// OwnerNameIn applies the In predicate on the "owner_name" field.
func OwnerNameIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldOwnerName, vs...))
}

// OwnerNameNotIn applies the NotIn predicate on the "owner_name" field.
func OwnerNameNotIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldOwnerName, vs...))
}

// OwnerNameGT applies the GT predicate on the "owner_name" field.
func OwnerNameGT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldOwnerName, v))
}

// OwnerNameGTE applies the GTE predicate on the "owner_name" field.
func OwnerNameGTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldOwnerName, v))
}

// OwnerNameLT applies the LT predicate on the "owner_name" field.
func OwnerNameLT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldOwnerName, v))
}

// OwnerNameLTE applies the LTE predicate on the "owner_name" field.
func OwnerNameLTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldOwnerName, v))
}

// OwnerNameContains applies the Contains predicate on the "owner_name" field.
func OwnerNameContains(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContains(FieldOwnerName, v))
}

// OwnerNameHasPrefix applies the HasPrefix predicate on the "owner_name" field.
func OwnerNameHasPrefix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasPrefix(FieldOwnerName, v))
}

// OwnerNameHasSuffix applies the HasSuffix predicate on the "owner_name" field.
func OwnerNameHasSuffix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasSuffix(FieldOwnerName, v))
}

// OwnerNameIsNil applies the IsNil predicate on the "owner_name" field.
func OwnerNameIsNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIsNull(FieldOwnerName))
}

// OwnerNameNotNil applies the NotNil predicate on the "owner_name" field.
func OwnerNameNotNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotNull(FieldOwnerName))
}

// OwnerNameEqualFold applies the EqualFold predicate on the "owner_name" field.
func OwnerNameEqualFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEqualFold(FieldOwnerName, v))
}

// OwnerNameContainsFold applies the ContainsFold predicate on the "owner_name" field.
func OwnerNameContainsFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContainsFold(FieldOwnerName, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotNull(FieldMeta))
}

// DbArgsIsNil applies the IsNil predicate on the "db_args" field.
func DbArgsIsNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIsNull(FieldDbArgs))
}

// DbArgsNotNil applies the NotNil predicate on the "db_args" field.
func DbArgsNotNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotNull(FieldDbArgs))
}

// DbCategoryEQ applies the EQ predicate on the "db_category" field.
func DbCategoryEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldDbCategory, v))
}

// DbCategoryNEQ applies the NEQ predicate on the "db_category" field.
func DbCategoryNEQ(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldDbCategory, v))
}

// DbCategoryIn applies the In predicate on the "db_category" field.
func DbCategoryIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldDbCategory, vs...))
}

// DbCategoryNotIn applies the NotIn predicate on the "db_category" field.
func DbCategoryNotIn(vs ...string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldDbCategory, vs...))
}

// DbCategoryGT applies the GT predicate on the "db_category" field.
func DbCategoryGT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldDbCategory, v))
}

// DbCategoryGTE applies the GTE predicate on the "db_category" field.
func DbCategoryGTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldDbCategory, v))
}

// DbCategoryLT applies the LT predicate on the "db_category" field.
func DbCategoryLT(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldDbCategory, v))
}

// DbCategoryLTE applies the LTE predicate on the "db_category" field.
func DbCategoryLTE(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldDbCategory, v))
}

// DbCategoryContains applies the Contains predicate on the "db_category" field.
func DbCategoryContains(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContains(FieldDbCategory, v))
}

// DbCategoryHasPrefix applies the HasPrefix predicate on the "db_category" field.
func DbCategoryHasPrefix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasPrefix(FieldDbCategory, v))
}

// DbCategoryHasSuffix applies the HasSuffix predicate on the "db_category" field.
func DbCategoryHasSuffix(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldHasSuffix(FieldDbCategory, v))
}

// DbCategoryIsNil applies the IsNil predicate on the "db_category" field.
func DbCategoryIsNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIsNull(FieldDbCategory))
}

// DbCategoryNotNil applies the NotNil predicate on the "db_category" field.
func DbCategoryNotNil() predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotNull(FieldDbCategory))
}

// DbCategoryEqualFold applies the EqualFold predicate on the "db_category" field.
func DbCategoryEqualFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEqualFold(FieldDbCategory, v))
}

// DbCategoryContainsFold applies the ContainsFold predicate on the "db_category" field.
func DbCategoryContainsFold(v string) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldContainsFold(FieldDbCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocCollection {
	return predicate.DocCollection(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.DocCollection {
	return predicate.DocCollection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.DocCollection {
	return predicate.DocCollection(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocCollection) predicate.DocCollection {
	return predicate.DocCollection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocCollection) predicate.DocCollection {
	return predicate.DocCollection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocCollection) predicate.DocCollection {
	return predicate.DocCollection(sql.NotPredicates(p))
}
