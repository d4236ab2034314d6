// Package teisplit extracts page ranges from TEI-XML manuscript
// transcriptions into standalone TEI documents.
//
// # Quick Start
//
// Create a splitter and run a job:
//
//	s, err := teisplit.NewSplitter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := s.Run(ctx, teisplit.Job{
//	    InputPath: "export_files/file.xml",
//	    OutputDir: "output",
//	    Metadata:  teisplit.Metadata{Year: "1758"},
//	    Pages:     teisplit.PageRange{Start: 81, Stop: 89},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath) // output/1758_081-088.xml
//
// # Pipeline
//
// A run goes through these stages, in order:
//
//  1. Parse the source document (beevik/etree)
//  2. Build a new document holding only the teiHeader
//  3. Select, for every page, its surface elements and either its table
//     elements or its ab elements
//  4. Move the selection into facsimile and text/body/div, one pb per page
//  5. Serialize and write {year}_{start}-{last}_before.xml
//  6. Apply the XSLT stylesheet, re-serialize and flatten line breaks in
//     front of <lb> markers
//  7. Write {year}_{NNN}-{NNN}.xml
//  8. Delete the intermediate file
//
// A failing stage stops the run. Errors are *StageError values; use
// errors.Is with the package sentinels to classify them. Result.Stage
// reports the last completed stage even on failure.
//
// Overwriting an existing output file and failing to delete the
// intermediate file are not errors. Both are logged at warn level and
// listed in Result.Warnings.
//
// # Configuration
//
// Use functional options to customize the splitter:
//
//	s, err := teisplit.NewSplitter(
//	    teisplit.WithLogger(logger),
//	    teisplit.WithTimeout(time.Minute),
//	    teisplit.WithAssetPath("/path/to/assets"),
//	)
//
// # Stylesheets
//
// Job.Stylesheet is either a path to an .xsl file or the name of a
// stylesheet. Names are looked up in {assetPath}/stylesheets/{name}.xsl,
// then among the bundled stylesheets ("normalize", "identity"):
//
//	assets/
//	└── stylesheets/
//	    └── custom.xsl
//
// # XSLT Engines
//
// Transforms run in-process through libxslt (cgo) by default. WithXSLTProc
// switches to an external xsltproc binary, which can be interrupted by
// context cancellation. WithTransformerFactory plugs in any other engine.
package teisplit
