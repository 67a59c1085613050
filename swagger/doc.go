// Package swagger parses the Swagger 2.0 document that Fitbit publishes for
// its Web API.
//
// The document model is deliberately scoped to what the Fitbit description
// uses: paths with the four common HTTP methods, flat (non-$ref) parameters,
// tags, and OAuth2 security definitions. It is not a general OpenAPI
// toolchain.
//
// Basic usage:
//
//	p := swagger.New()
//	result, err := p.Parse("fitbit-web-api-swagger.json")
//	if err != nil {
//	    return err
//	}
//	doc, _ := result.Doc()
//	fmt.Println(doc.Info.Title, result.Stats.OperationCount)
package swagger
