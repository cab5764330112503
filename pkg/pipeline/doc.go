// Package pipeline runs the validated ingestion of user records.
//
// A run fetches one collection, validates each record's date of birth in
// input order, and either reports the whole collection once or stops at the
// first failure. Every failure leaves ProcessUsers as a *Error classified
// into exactly one Kind:
//
//   - KindValidation: a record's dateOfBirth is malformed or not a real date;
//     the message names the first offending user.
//   - KindRead: the source answered but could not deliver the resource; the
//     error carries the message and the source's status text as Cause.
//   - KindUnexpected: anything else, with the message prefixed by
//     "Unexpected error: ".
//
// Classification is the pure function Classify. Runs are independent: a
// Pipeline keeps no state between calls, so the same resource yields the same
// outcome every time.
//
// Each run moves through START, FETCHING, VALIDATING and then SUCCEEDED or
// FAILED. Observers registered with WithStateObserver see every transition.
package pipeline
