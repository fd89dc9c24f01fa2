// Package graphql builds the query documents sent to the Audiothek catalog.
// Builders are pure string transforms: they never perform I/O, and every
// value interpolated into a string literal is escaped for the GraphQL grammar.
package graphql

import (
	"fmt"
	"strconv"
	"strings"
)

// Query is a validated-by-construction query fragment together with the
// name of the operation it performs, used for logging and metrics labels.
type Query struct {
	operation string
	fragment  string
}

// Operation names, also used as metric label values.
const (
	OpCategoriesByIDs    = "categories_by_ids"
	OpCategoriesBySearch = "categories_by_search"
	OpProgramSets        = "program_sets"
	OpProgramSetsByIDs   = "program_sets_by_ids"
	OpEpisodes           = "episodes"
)

// Operation returns the operation name of the query.
func (q Query) Operation() string {
	return q.operation
}

// Fragment returns the raw selection fragment without the enclosing braces.
func (q Query) Fragment() string {
	return q.fragment
}

// Document returns the full query document as it goes on the wire.
func (q Query) Document() string {
	return "{" + q.fragment + "}"
}

// CategoriesByIDs selects editorial categories by their explicit IDs.
func CategoriesByIDs(ids []int) Query {
	return Query{
		operation: OpCategoriesByIDs,
		fragment:  fmt.Sprintf("editorialCategoriesByIDs(ids:[%s]){edges{node{title, id}}}", quoteInts(ids)),
	}
}

// CategoriesBySearch selects editorial categories whose title contains the term.
func CategoriesBySearch(term string) Query {
	return Query{
		operation: OpCategoriesBySearch,
		fragment:  fmt.Sprintf(`editorialCategories(filter:{title:{includes:"%s"}}){edges{node{title, id}}}`, escape(term)),
	}
}

// Page is a pagination clause for the program-set listing.
type Page struct {
	Limit  int
	Offset int
}

// Filter restricts the program-set listing. Zero-valued parts are omitted.
type Filter struct {
	CategoryIDs []string // AND: membership in any of these editorial categories
	TitleSearch string   // AND: case-insensitive title substring
}

// ProgramSets lists program sets matching the filter, most recently
// updated first. The fragment always requests totalCount so the caller
// can detect when the result set is exhausted.
func ProgramSets(f Filter, p Page) Query {
	var clauses []string
	if len(f.CategoryIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("editorialCategoryId:{in:[%s]}", quoteStrings(f.CategoryIDs)))
	}
	if f.TitleSearch != "" {
		clauses = append(clauses, fmt.Sprintf(`title:{likeInsensitive:"%%%s%%"}`, escape(f.TitleSearch)))
	}

	args := make([]string, 0, 3)
	if len(clauses) > 0 {
		args = append(args, fmt.Sprintf("filter:{%s}", strings.Join(clauses, ",")))
	}
	args = append(args,
		fmt.Sprintf("first:%d,offset:%d", p.Limit, p.Offset),
		"orderBy:LAST_ITEM_ADDED_DESC",
	)

	return Query{
		operation: OpProgramSets,
		fragment: fmt.Sprintf("programSets(%s){edges{node{title, id, sharingUrl, description, synopsis}}, totalCount}",
			strings.Join(args, ",")),
	}
}

// ProgramSetsByIDs selects program sets by explicit IDs, bypassing
// all filters and pagination.
func ProgramSetsByIDs(ids []int) Query {
	return Query{
		operation: OpProgramSetsByIDs,
		fragment:  fmt.Sprintf("programSetsByIds(ids:[%s]){nodes{title, id, sharingUrl, description, synopsis}}", quoteInts(ids)),
	}
}

// EpisodesForProgramSet selects one program set with its most recent
// published episodes, newest first.
func EpisodesForProgramSet(id int64, latest int) Query {
	return Query{
		operation: OpEpisodes,
		fragment: fmt.Sprintf("programSet(id:%d){title,path,synopsis,sharingUrl,image{url,url1X1},"+
			"items(orderBy:PUBLISH_DATE_DESC,filter:{isPublished:{equalTo:true}},first:%d)"+
			"{nodes{title,summary,synopsis,sharingUrl,publicationStartDateAndTime:publishDate,"+
			"duration,image{url,url1X1},audios{url,downloadUrl,mimeType}}}}", id, latest),
	}
}

// escape makes a value safe for embedding in a GraphQL string literal.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}

func quoteInts(ids []int) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + strconv.Itoa(id) + `"`
	}
	return strings.Join(quoted, ",")
}

func quoteStrings(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + escape(id) + `"`
	}
	return strings.Join(quoted, ",")
}
