// Package generator produces Go client code from Fitbit's Swagger 2.0 API
// description.
//
// The generator emits one method on the fitbit.Client for every operation in
// the document. Methods take required parameters as arguments, group optional
// query parameters into a per-method params struct, enforce the OAuth2 scopes
// the operation declares, and return the raw JSON response.
//
// # Quick Start
//
// Generate from a file or URL using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithFilePath("fitbit_api.json"),
//		generator.WithPackageName("fitbit"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./fitbit"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.PackageName = "fitbit"
//	result, _ := g.Generate("https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json")
//	result.WriteFiles("./fitbit")
//
// # Parameter Type Mapping
//
// Swagger parameter types are mapped to Go types as follows:
//   - string with format "date" (or a description naming the yyyy-MM-dd
//     format) → time.Time; the zero value renders as "today"
//   - integer → int
//   - number → float64
//   - boolean → bool
//   - everything else → string
//
// # Generated Files
//
// Operations are grouped by their first tag and written to one file per
// group (endpoints_activity_gen.go, endpoints_sleep_gen.go, ...). The OAuth2
// token endpoints are skipped; the runtime client handles authorization
// itself.
package generator
