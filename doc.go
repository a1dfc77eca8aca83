// Package consolefmt tokenizes developer-console format strings.
//
// A console message is a format string plus arguments. The format string may
// carry printf-style specifiers (%s, %d, %i, %f, %c, %o, %O, %_ and %%) and
// ANSI SGR escape sequences (ESC [ codes m). Format resolves both in a single
// pass and returns a token stream made of text, complete CSS style
// declarations and rich-value placeholders, together with the arguments that
// no specifier consumed.
//
// Core properties:
//   - Never fails: malformed escapes and starved specifiers stay literal text
//   - Style tokens always describe the whole active style, not a delta
//   - Pure and allocation-light; safe for concurrent use
//
// Example:
//
//	res := consolefmt.Format("\x1b[1m%s\x1b[0m took %dms", []consolefmt.Value{
//		consolefmt.StringValue("GET /"),
//		consolefmt.NumberValue(12.7),
//	})
//	err := consolefmt.Render(consolefmt.RenderRequest{
//		Writer: os.Stdout,
//		Result: res,
//		Width:  80,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render maps the token stream back to terminal output, translating CSS
// declarations into SGR parameters.
package consolefmt
