/*
Package espalier simplifies raw Figma design documents into a compact,
implementation-oriented representation for humans and AI coding agents.

Raw Figma API responses are huge and deeply nested, and most of the payload
is irrelevant for reproducing a design in code. Espalier prunes the tree down
to the properties that matter (layout, fills, strokes, effects, text styles),
deduplicates repeated styling through a content-addressed style table, and
converts values into CSS-friendly terms.

# Concept

The library follows a Hexagonal Architecture: the simplifier core is pure,
and the surrounding adapters (Figma REST client, Redis cache, HTTP API, MCP
server, CLI) plug into it through the interfaces in pkg/ports. This lets the
same fetch-and-simplify pipeline back a command line tool, a JSON API, or an
AI agent integration.

# Usage

Wire a design source (usually the bundled Figma client) into a Service and
fetch:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/internal/adapters/figma"
	)

	func main() {
		client, err := figma.New(os.Getenv("FIGMA_API_KEY"), "")
		if err != nil {
			log.Fatal(err)
		}

		svc, err := espalier.New(client)
		if err != nil {
			log.Fatal(err)
		}

		design, err := svc.FetchFile(context.Background(), "your-file-key", 0)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("%s: %d root nodes, %d shared styles",
			design.Name, len(design.Nodes), len(design.GlobalVars.Styles))
	}

Already-decoded documents can be simplified directly with Service.Simplify,
which never fails: malformed subtrees are logged and dropped rather than
aborting the whole parse.
*/
package espalier
