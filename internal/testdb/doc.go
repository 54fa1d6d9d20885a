// Package testdb provides utilities for tests that run against a real
// PostgreSQL database.
//
// The helpers are only compiled with the integration build tag and skip the
// calling test when no database URL is configured:
//
//	//go:build integration
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			// statements here are rolled back afterwards
//		})
//	}
package testdb
