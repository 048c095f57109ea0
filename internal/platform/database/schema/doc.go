// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns panelkit reads and writes.
//
// Catalog tables (core.*) back the entity types that explorers browse; the ui.*
// tables hold durable workspace tab state. Queries build their SQL from these
// definitions instead of repeating string literals.
package schema
