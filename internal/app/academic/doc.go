// Package academic holds the decision logic over a student's graded attempts:
// the credit-weighted performance aggregate and the prerequisite eligibility
// classification. Everything here is pure; callers fetch the records.
package academic
