/*
Package assetsapi
Low-level interface for the Jira Assets workspace REST API.

Usage:

    import "github.com/assetctl/cli/pkg/assetsapi"

    api := assetsapi.Connection{
        Host:        "https://api.atlassian.com/jsm/assets/workspace",
        WorkspaceID: "XXX",
        AuthString:  "user@example.com:token",
    }

    // Raw request
    body, err := api.Request("GET", "/object/15", nil)

    // AQL search with pagination
    page, err := api.Search(`objectTypeId = 21`)
    for {
        for _, value := range page.Values {
            ...
        }
        if !page.HasNext() {
            break
        }
        page, err = page.GetNext()
    }

All paths starting with "/" are resolved against
'{Host}/{WorkspaceID}/v1'. Every request carries JSON content headers
and a basic Authorization header derived from AuthString. Typed
interaction with objects and schemas lives in pkg/assets.
*/
package assetsapi
