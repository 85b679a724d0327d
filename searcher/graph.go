package searcher

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "search"

// Graph renders the root of a decision as a DOT digraph: one node per root
// candidate labelled with its value, the chosen edge drawn bold.
func (d *Decision) Graph() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.Wrap(err, "failed to name graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "failed to direct graph")
	}

	root := "root"
	label := fmt.Sprintf("%s to move\n%s", d.Player, formatValue(d.Value))
	if err := g.AddNode(graphName, root, map[string]string{
		"label": strconv.Quote(label),
		"shape": "box",
	}); err != nil {
		return "", errors.Wrap(err, "failed to add root node")
	}

	for i, branch := range d.Branches {
		name := fmt.Sprintf("b%d", i)
		if err := g.AddNode(graphName, name, map[string]string{
			"label": strconv.Quote(formatValue(branch.Value)),
		}); err != nil {
			return "", errors.Wrapf(err, "failed to add branch %d", i)
		}

		attrs := map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%s->%s", branch.Move.From, branch.Move.To)),
		}
		if branch.Move.Equal(d.Move) {
			attrs["style"] = "bold"
		}
		if err := g.AddEdge(root, name, true, attrs); err != nil {
			return "", errors.Wrapf(err, "failed to add edge %d", i)
		}
	}
	return g.String(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
