// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package yamljson converts YAML documents into JSON trees.
//
// # Events
//
// A Source delivers the structure of a YAML stream as a sequence of Event
// values, in the order a YAML parser reports them. NewSource parses YAML text
// from an io.Reader; Replay delivers a fixed sequence of events:
//
//	src := yamljson.NewSource(os.Stdin)
//	for {
//	   ev, err := src.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   }
//	   log.Printf("Event: %v", ev)
//	}
//
// # Conversion
//
// A Transducer applies events one at a time to build a tree.Value:
//
//	YAML            | Events                        | JSON
//	--------------- | ----------------------------- | -------------------
//	mapping         | mapping-start, mapping-end    | object
//	sequence        | sequence-start, sequence-end  | array
//	scalar          | scalar                        | string
//	&name node      | anchor on a start or scalar   | (remembered)
//	*name           | alias                         | copy of the anchored value
//	<<: *name       | scalar "<<", alias            | members merged into the object
//
// All scalars become strings, whatever their tag. A "<<" key may also be
// followed by a sequence of aliases, which are merged in order so that later
// sources overwrite earlier ones. Keys written explicitly after a merge
// overwrite merged members.
//
// Convert runs a Transducer over a Source reading from an io.Reader, and
// returns the resulting tree:
//
//	root, err := yamljson.Convert(input)
//	var perr *yamljson.ParseError
//	if errors.As(err, &perr) {
//	   // root holds whatever was converted before the failure
//	} else if err != nil {
//	   log.Fatalf("Convert: %v", err)
//	}
//	yamljson.WriteJSON(os.Stdout, root)
//
// Input that cannot be parsed is reported as a *ParseError. Events that cannot
// be applied where they occur, such as an alias to an undefined anchor, are
// reported as an *InvariantError.
package yamljson
