package render

import "github.com/KirkDiggler/dexboard/internal/tree"

// TreeNode is one creature inside a stage row
type TreeNode struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
	Current   bool   `json:"current"`
}

// TreeRow is one stage of the chain. Connector is set on every row except
// the last and means a link is drawn below it.
type TreeRow struct {
	Stage     int        `json:"stage"`
	Nodes     []TreeNode `json:"nodes"`
	Connector bool       `json:"connector"`
}

// TreeView is the rendered evolution chain. Message is set instead of Rows
// when there is nothing to draw.
type TreeView struct {
	ChainID int       `json:"chain_id"`
	Rows    []TreeRow `json:"rows"`
	Message string    `json:"message,omitempty"`
}

// Tree renders seq top to bottom, flagging currentID
func Tree(seq tree.StageSequence, currentID int) TreeView {
	if len(seq.Groups) == 0 {
		return TreeView{ChainID: seq.ChainID, Message: MessageNoEvolution}
	}

	view := TreeView{ChainID: seq.ChainID, Rows: make([]TreeRow, 0, len(seq.Groups))}
	for i, g := range seq.Groups {
		row := TreeRow{Stage: g.Stage, Connector: i < len(seq.Groups)-1}
		for _, c := range g.Creatures {
			row.Nodes = append(row.Nodes, TreeNode{
				ID:        c.ID,
				Name:      c.DisplayName(),
				SpriteURL: c.SpriteURL,
				Current:   c.ID == currentID,
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// NoTree is the view for a creature without a chain identifier
func NoTree() TreeView {
	return TreeView{Message: MessageNoEvolution}
}
