package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ruinahall/deckwright/internal/card"
)

const scrapeUserAgent = "Mozilla/5.0 (compatible; deckwright/1.0)"

// FetchWikiHTML downloads the combat page list. The body read is capped at
// 8MB; the wiki table is around 2MB.
func FetchWikiHTML(ctx context.Context, client *http.Client, url string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, err
	}
	return strings.NewReader(string(body)), nil
}

var diceLine = regexp.MustCompile(`(?i)^(slash|blunt|pierce|block|evade)\s+(\d+)\s*-\s*(\d+)\s*(.*)$`)

// ParseWikiHTML walks the wiki's combat page table and organizes the rows
// into card records. Rank section headers are <th> rows naming the rank;
// card rows carry an <img>. The cells hold, in order: name, light cost,
// range (in data-sort-value), and the effect plus dice lines. Dice-effect
// text is spacing-normalized, and effect profiles are authored on the way
// out.
func ParseWikiHTML(r io.Reader) ([]*card.Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing wiki html: %v", err)
	}

	var cards []*card.Card
	currentRank := card.Rank("")
	seen := make(map[string]int)

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if rank, ok := rankHeader(n); ok {
				currentRank = rank
				return
			}
			if hasElement(n, "img") && currentRank != "" {
				if c := parseCardRow(n, currentRank); c != nil {
					c.ID = uniqueID(c, seen)
					BuildAffinity(c)
					cards = append(cards, c)
				}
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(doc)

	if len(cards) == 0 {
		return nil, fmt.Errorf("no combat pages found in document")
	}
	return cards, nil
}

// rankHeader reports whether the row is a rank section header. Header cells
// carry extra chrome ("Collapse" toggles), so the rank name is matched as a
// substring, the way the wiki rows name it.
func rankHeader(tr *html.Node) (card.Rank, bool) {
	th := firstElement(tr, "th")
	if th == nil {
		return "", false
	}
	text := strings.ToLower(textContent(th))
	if strings.Contains(text, "stars of the city") {
		return card.StarOfTheCity, true
	}
	for _, rank := range card.Ranks {
		if strings.Contains(text, strings.ToLower(string(rank))) {
			return rank, true
		}
	}
	return "", false
}

func parseCardRow(tr *html.Node, rank card.Rank) *card.Card {
	cells := childElements(tr, "td")
	if len(cells) < 4 {
		return nil
	}
	c := &card.Card{Rank: rank}

	// first cell always carries the name, inside a span
	if span := firstElement(cells[0], "span"); span != nil {
		c.Name = strings.TrimSpace(textContent(span))
	} else {
		c.Name = strings.TrimSpace(textContent(cells[0]))
	}
	if c.Name == "" {
		return nil
	}

	if cost, err := strconv.Atoi(strings.TrimSpace(textContent(cells[1]))); err == nil {
		c.Cost = cost
	}
	c.Range = strings.ToLower(attr(cells[2], "data-sort-value"))
	if c.Range == "" {
		c.Range = strings.ToLower(strings.TrimSpace(textContent(cells[2])))
	}

	parseEffectCell(cells[3], c)
	return c
}

// parseEffectCell splits the fourth cell into the on-play effect and the
// dice list. Lines shaped like "Slash 4-8 On hit, inflict 2 Burn" become
// dice; everything before the first die line is the card effect.
func parseEffectCell(td *html.Node, c *card.Card) {
	var effectLines []string
	for _, line := range strings.Split(textContent(td), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := diceLine.FindStringSubmatch(line); m != nil {
			min, _ := strconv.Atoi(m[2])
			max, _ := strconv.Atoi(m[3])
			c.Dice = append(c.Dice, card.Die{
				Kind:   card.DieKind(strings.ToLower(m[1])),
				Min:    min,
				Max:    max,
				Effect: NormalizeSpacing(strings.TrimSpace(m[4])),
			})
			continue
		}
		if len(c.Dice) == 0 {
			effectLines = append(effectLines, NormalizeSpacing(line))
		}
	}
	c.Effect = strings.Join(effectLines, " ")
}

// uniqueID derives a stable slug from rank and name, suffixing repeats so
// reprint rows stay addressable.
func uniqueID(c *card.Card, seen map[string]int) string {
	slug := slugify(string(c.Rank)) + "." + slugify(c.Name)
	seen[slug]++
	if n := seen[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// html tree helpers

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteByte('\n')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := firstElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasElement(n *html.Node, tag string) bool {
	return firstElement(n, tag) != nil
}

func childElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
