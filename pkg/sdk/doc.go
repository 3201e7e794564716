// Package earlyhelp provides the Early Help content library as Go code.
//
// The package has two layers.
//
// # Pure functions over in-memory records
//
// Search, filter, rank and score functions work on slices you already hold.
// They never mutate their input and never fail:
//
//	hits := earlyhelp.SearchEntries(entries, "echo chamber")
//	hits = earlyhelp.FilterByTags(hits, []string{"online"})
//	hits = earlyhelp.SortEntries(hits)
//	res := earlyhelp.ScoreChecklist(earlyhelp.ChecklistProgress{"c1": true})
//
// # Embedded client over Postgres and a session store
//
//	client, _ := earlyhelp.New(ctx,
//	    earlyhelp.WithPostgres(earlyhelp.PostgresConfig{Host: "localhost", DBName: "earlyhelp"}),
//	    earlyhelp.WithValkey("localhost:6379", ""),
//	)
//	defer client.Close()
//	page, _ := client.Library().Search(ctx, earlyhelp.Query{Text: "warning signs"})
//	ev, _ := client.Checklist().Start(ctx)
package earlyhelp
