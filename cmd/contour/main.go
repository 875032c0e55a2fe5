// Command contour compiles SDL schema files into an OpenCRUD-style
// GraphQL schema and, optionally, serves a reference execution layer
// over the result.
//
// Usage:
//
//	contour [flags] <command>
//
// Commands:
//
//	validate   Run semantic analysis and print diagnostics
//	compile    Validate then print the generated GraphQL schema
//	serve      Validate, compile, and serve the schema over HTTP
//	init       Scaffold a starter SDL file interactively
//	version    Print version information
//	config     Show the effective configuration
package main

func main() {
	Execute()
}
