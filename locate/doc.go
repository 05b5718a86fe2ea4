// Package locate is the unified query facade for the shelf locator.
//
// It composes the callnum parser, the shelf-range index, the match/rank
// engine and the optional suggestion engine into a single Search operation.
// This package is the recommended entry point for anything that answers
// "where is this book": the HTTP layer, the MCP surface and embedding users
// all go through it.
//
// # Basic Usage
//
//	idx := index.Build(rows)
//	loc, err := locate.New(locate.Options{Index: idx})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := loc.Search(ctx, "370.113พ", 5)
//	if res.Found {
//	    fmt.Println(res.Message)
//	}
//
// # Query Modes
//
// A query that parses as a call number is matched against range boundaries
// (mode "call_number"); anything else is matched as a case-folded substring
// of category, call-range label and id fields (mode "text"). A miss is a
// normal outcome reported as Found=false, never an error.
//
// # Thread Safety
//
// A Locator is immutable after New and safe for concurrent use.
package locate
