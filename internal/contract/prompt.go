package contract

import (
	"fmt"
	"strings"
)

// CategoryCode maps a spend code from the sheet to its display name.
type CategoryCode struct {
	Code string
	Name string
}

// CategoryCodes are the codes accepted in the cost category column, in the
// order the guide lists them.
var CategoryCodes = []CategoryCode{
	{"A", "Airfare"},
	{"H", "Housing"},
	{"F", "Food"},
	{"S", "Shopping"},
	{"G", "Gifts"},
	{"T", "Transportation"},
	{"R", "Recreation"},
}

const promptHeader = `You are a travel assistant turning a spreadsheet itinerary into a booklet.
The sheet is given below as comma-separated rows with blank rows removed.
Return JSON that matches the response schema exactly.

Sheet layout:
1. Title. The trip title or main location is in merged cell C1 (row 1, column 3), e.g. "Thailand Trip".
2. Spend (columns I to L).
   - Column I: cost for person 1.
   - Column J: category code.
%s
   - Column K: cost for person 2.
   - Column L: total cost for the row (I plus K).
   - totalSpend is the sum of column L over all rows.
   - spendBreakdown sums column L per category decoded from column J. List each category once.
3. Days (columns A, D and E).
   - Dates are sparse: a value in column A starts a new day, and rows with column A empty belong to the most recent day.
   - Every row between two dates is an event of the earlier day.
   - Skip rows with nothing in columns A, D and E. Never emit empty events.
   - Column D is the start time. Column E is the activity and is used as the event description.
4. Enrichment.
   - Write 3 or 4 distinct highlights per day as complete, capitalized sentences.
   - For a restaurant or food stop, one highlight reads like a Google review, e.g. Review: "Best pad thai in the city, quick service and an electric atmosphere."
   - For a hotel or resort, one highlight reads like a Forbes or Michelin guide snippet, e.g. Forbes says: "A five-star sanctuary with sweeping river views."
   - Pick realistic weather for the place and date, using only Sunny, Rainy, Cloudy or Snowy.

RAW DATA:
`

// Prompt builds the interpretation instructions for normalized sheet text.
func Prompt(text string) string {
	var codes strings.Builder
	for _, c := range CategoryCodes {
		fmt.Fprintf(&codes, "     %s = %s\n", c.Code, c.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, strings.TrimRight(codes.String(), "\n"))
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}
