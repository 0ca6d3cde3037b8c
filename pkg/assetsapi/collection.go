package assetsapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PageSize is the fixed page size of the remote AQL endpoint.
const PageSize = 25

type Collection struct {
	API     *Connection
	Values  []json.RawMessage
	StartAt int
	Total   int

	query string
}

type searchRequest struct {
	QLQuery string `json:"qlQuery"`
}

type searchResponse struct {
	Total  int               `json:"total"`
	Values []json.RawMessage `json:"values"`
}

/*
Search
Run an AQL query and return the first page of results. The remote
paginates in steps of PageSize; walk the rest with HasNext/GetNext.
*/
func (c *Connection) Search(query string) (Collection, error) {
	return c.searchAt(query, 0)
}

func (c *Connection) searchAt(query string, startAt int) (Collection, error) {
	var result Collection

	// The first page is requested without a startAt parameter
	path := "/object/aql"
	if startAt > 0 {
		path = fmt.Sprintf("/object/aql?startAt=%d", startAt)
	}

	payload, err := json.Marshal(searchRequest{QLQuery: query})
	if err != nil {
		return result, err
	}

	body, err := c.Request("POST", path, payload)
	if err != nil {
		return result, err
	}

	var response searchResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return result, err
	}

	result.API = c
	result.Values = response.Values
	result.StartAt = startAt
	result.Total = response.Total
	result.query = query

	if c.OnPage != nil {
		c.OnPage(startAt+len(result.Values), result.Total)
	}

	return result, nil
}

func (c *Collection) HasNext() bool {
	return len(c.Values) > 0 && c.StartAt+len(c.Values) < c.Total
}

/*
GetNext
Return the next page of the paginated collection, requested at the
offset right after this page's last value.
*/
func (c *Collection) GetNext() (Collection, error) {
	if !c.HasNext() {
		return Collection{}, errors.New("no next page")
	}
	return c.API.searchAt(c.query, c.StartAt+len(c.Values))
}
