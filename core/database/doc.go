// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure the connection that backs
// the graph store: MySQL in production, SQLite for local use and tests.
//
// # Connect
//
// The generic Connect function establishes a connection for the configured
// driver. The graph schema itself (nodes, groups, membership edges) lives in
// core/graph; migration runs through graph.GormStore.Migrate.
//
// # Schema Inspection
//
// The inspector retrieves table columns for the status command, which
// reports whether the graph tables exist and what shape they have.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "nodes")
package database
