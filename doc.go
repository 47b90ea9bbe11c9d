// Package md2html converts a small line-oriented markdown dialect to HTML.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\nWorld\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//
// # Dialect
//
// Each line is rewritten by four inline passes, in order:
//
//  1. ((text)) is replaced by text with every "c" and "C" removed
//  2. [[text]] is replaced by the lowercase hex MD5 digest of text
//  3. **text** becomes <b>text</b>
//  4. __text__ becomes <em>text</em>
//
// and then classified by its first character:
//
//	# Title      <h1>Title</h1> (one to six #, then a space)
//	- item       <ul> item list, one "\t<li>item</li>" line per item
//	* item       <ol> item list, same shape as <ul>
//	text         <p> paragraph, consecutive lines joined by <br/>
//
// Blank lines and lines starting with a space produce no output and end
// the current block. Text is not HTML-escaped.
//
// # Options
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithDocument("Release notes"), // HTML5 skeleton
//	    md2html.WithCSS("body { max-width: 40em; }"),
//	    md2html.WithReference(md2html.EngineGoldmark),
//	)
//
// WithReference renders the same input with goldmark or blackfriday and
// stores it in Result.Reference, which helps spotting where the dialect
// differs from CommonMark.
package md2html
