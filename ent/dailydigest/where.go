// Code generated by ent, DO NOT EDIT.

package dailydigest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldContainsFold(FieldID, id))
}

// DigestDate applies equality check predicate on the "digest_date" field. It's identical to DigestDateEQ.
func DigestDate(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldDigestDate, v))
}

// Headline applies equality check predicate on the "headline" field. It's identical to HeadlineEQ.
func Headline(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldHeadline, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldTokensUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldDeliveredAt, v))
}

// DigestDateEQ applies the EQ predicate on the "digest_date" field.
func DigestDateEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldDigestDate, v))
}

// DigestDateNEQ applies the NEQ predicate on the "digest_date" field.
func DigestDateNEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldDigestDate, v))
}

// DigestDateIn applies the In predicate on the "digest_date" field.
func DigestDateIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldDigestDate, vs...))
}

// DigestDateNotIn applies the NotIn predicate on the "digest_date" field.
func DigestDateNotIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldDigestDate, vs...))
}

// DigestDateGT applies the GT predicate on the "digest_date" field.
func DigestDateGT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldDigestDate, v))
}

// DigestDateGTE applies the GTE predicate on the "digest_date" field.
func DigestDateGTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldDigestDate, v))
}

// DigestDateLT applies the LT predicate on the "digest_date" field.
func DigestDateLT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldDigestDate, v))
}

// DigestDateLTE applies the LTE predicate on the "digest_date" field.
func DigestDateLTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldDigestDate, v))
}

// UserRoleEQ applies the EQ predicate on the "user_role" field.
func UserRoleEQ(v UserRole) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldUserRole, v))
}

// UserRoleNEQ applies the NEQ predicate on the "user_role" field.
func UserRoleNEQ(v UserRole) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldUserRole, v))
}

// UserRoleIn applies the In predicate on the "user_role" field.
func UserRoleIn(vs ...UserRole) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldUserRole, vs...))
}

// UserRoleNotIn applies the NotIn predicate on the "user_role" field.
func UserRoleNotIn(vs ...UserRole) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldUserRole, vs...))
}

// HeadlineEQ applies the EQ predicate on the "headline" field.
func HeadlineEQ(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldHeadline, v))
}

// HeadlineNEQ applies the NEQ predicate on the "headline" field.
func HeadlineNEQ(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldHeadline, v))
}

// HeadlineIn applies the In predicate on the "headline" field.
func HeadlineIn(vs ...string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldHeadline, vs...))
}

// HeadlineNotIn applies the NotIn predicate on the "headline" field.
func HeadlineNotIn(vs ...string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldHeadline, vs...))
}

// HeadlineGT applies the GT predicate on the "headline" field.
func HeadlineGT(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldHeadline, v))
}

// HeadlineGTE applies the GTE predicate on the "headline" field.
func HeadlineGTE(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldHeadline, v))
}

// HeadlineLT applies the LT predicate on the "headline" field.
func HeadlineLT(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldHeadline, v))
}

// HeadlineLTE applies the LTE predicate on the "headline" field.
func HeadlineLTE(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldHeadline, v))
}

// HeadlineContains applies the Contains predicate on the "headline" field.
func HeadlineContains(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldContains(FieldHeadline, v))
}

// HeadlineHasPrefix applies the HasPrefix predicate on the "headline" field.
func HeadlineHasPrefix(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldHasPrefix(FieldHeadline, v))
}

// HeadlineHasSuffix applies the HasSuffix predicate on the "headline" field.
func HeadlineHasSuffix(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldHasSuffix(FieldHeadline, v))
}

// HeadlineEqualFold applies the EqualFold predicate on the "headline" field.
func HeadlineEqualFold(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEqualFold(FieldHeadline, v))
}

// HeadlineContainsFold applies the ContainsFold predicate on the "headline" field.
func HeadlineContainsFold(v string) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldContainsFold(FieldHeadline, v))
}

// DeliveryStatusEQ applies the EQ predicate on the "delivery_status" field.
func DeliveryStatusEQ(v DeliveryStatus) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusNEQ applies the NEQ predicate on the "delivery_status" field.
func DeliveryStatusNEQ(v DeliveryStatus) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldDeliveryStatus, v))
}

// DeliveryStatusIn applies the In predicate on the "delivery_status" field.
func DeliveryStatusIn(vs ...DeliveryStatus) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldDeliveryStatus, vs...))
}

// DeliveryStatusNotIn applies the NotIn predicate on the "delivery_status" field.
func DeliveryStatusNotIn(vs ...DeliveryStatus) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldDeliveryStatus, vs...))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldTokensUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldCreatedAt, v))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.DailyDigest {
	return predicate.DailyDigest(sql.FieldNotNull(FieldDeliveredAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyDigest) predicate.DailyDigest {
	return predicate.DailyDigest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyDigest) predicate.DailyDigest {
	return predicate.DailyDigest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyDigest) predicate.DailyDigest {
	return predicate.DailyDigest(sql.NotPredicates(p))
}
