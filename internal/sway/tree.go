package sway

import (
	"strconv"

	swayipc "github.com/joshuarubin/go-sway"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// Node types reported in the layout tree.
const (
	NodeRoot        = "root"
	NodeOutput      = "output"
	NodeWorkspace   = "workspace"
	NodeCon         = "con"
	NodeFloatingCon = "floating_con"
	NodeDockarea    = "dockarea"
)

// scratchOutput is the hidden output holding the scratchpad workspace.
const scratchOutput = "__i3"

// Rect is a rectangle as encoded in the tree.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) toModel() model.Rect {
	return model.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// WindowProperties holds X11 properties for Xwayland and i3 windows.
type WindowProperties struct {
	Class    string `json:"class"`
	Instance string `json:"instance"`
	Title    string `json:"title"`
}

// Node is one container in the layout tree.
type Node struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Num              int               `json:"num"`
	Output           string            `json:"output"`
	Rect             Rect              `json:"rect"`
	WindowRect       Rect              `json:"window_rect"`
	DecoRect         Rect              `json:"deco_rect"`
	Focused          bool              `json:"focused"`
	Focus            []int64           `json:"focus"`
	AppID            *string           `json:"app_id"`
	WindowProperties *WindowProperties `json:"window_properties"`
	Nodes            []*Node           `json:"nodes"`
	FloatingNodes    []*Node           `json:"floating_nodes"`
}

// IsLeaf reports whether the node is a window container with no children.
func (n *Node) IsLeaf() bool {
	return (n.Type == NodeCon || n.Type == NodeFloatingCon) &&
		len(n.Nodes) == 0 && len(n.FloatingNodes) == 0
}

// children returns tiling children followed by floating children.
func (n *Node) children() []*Node {
	all := make([]*Node, 0, len(n.Nodes)+len(n.FloatingNodes))
	all = append(all, n.Nodes...)
	return append(all, n.FloatingNodes...)
}

// focusedChild returns the child at the head of the node's focus stack.
func (n *Node) focusedChild() *Node {
	if len(n.Focus) == 0 {
		return nil
	}
	for _, c := range n.children() {
		if c.ID == n.Focus[0] {
			return c
		}
	}
	return nil
}

// containsFocused reports whether the node or any descendant has input focus.
func (n *Node) containsFocused() bool {
	if n.Focused {
		return true
	}
	for _, c := range n.children() {
		if c.containsFocused() {
			return true
		}
	}
	return false
}

// Walk visits the node and its descendants depth-first, tiling children before
// floating ones, each in tree order. Returning false from fn skips the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children() {
		c.Walk(fn)
	}
}

// FocusedOutput returns the output holding input focus.
// The output subtree containing the focused node wins; when nothing is
// focused, the root's focus stack decides.
func FocusedOutput(root *Node) (*Node, error) {
	var found *Node
	for _, o := range root.Nodes {
		if o.Type != NodeOutput || o.Name == scratchOutput {
			continue
		}
		if o.containsFocused() {
			found = o
			break
		}
	}

	if found == nil {
		if c := root.focusedChild(); c != nil && c.Type == NodeOutput && c.Name != scratchOutput {
			found = c
		}
	}

	if found == nil {
		return nil, ErrNoFocusedOutput
	}
	return found, nil
}

// FocusedWorkspace returns the visible workspace on an output.
// i3 nests workspaces under a "content" container next to its dock areas;
// such containers are searched through, dock areas are skipped.
func FocusedWorkspace(output *Node) (*Node, error) {
	candidates := workspaceParents(output)

	for _, parent := range candidates {
		for _, ws := range parent.Nodes {
			if ws.Type == NodeWorkspace && ws.containsFocused() {
				return ws, nil
			}
		}
	}

	for _, parent := range candidates {
		if c := parent.focusedChild(); c != nil && c.Type == NodeWorkspace {
			return c, nil
		}
	}

	return nil, ErrNoFocusedWorkspace
}

// workspaceParents returns the output and the non-workspace containers
// below it that may hold workspaces, focused branch first.
func workspaceParents(output *Node) []*Node {
	parents := []*Node{output}
	var walk func(n *Node)
	walk = func(n *Node) {
		children := n.Nodes
		if c := n.focusedChild(); c != nil {
			children = append([]*Node{c}, n.Nodes...)
		}
		seen := make(map[int64]bool, len(children))
		for _, c := range children {
			if seen[c.ID] || c.Type != NodeCon {
				continue
			}
			seen[c.ID] = true
			parents = append(parents, c)
			walk(c)
		}
	}
	walk(output)
	return parents
}

// Windows returns the leaf windows of a workspace in depth-first tree order.
// The order is stable for a given tree and is the correlation key for labels.
func Windows(workspace *Node) []*Node {
	var leaves []*Node
	workspace.Walk(func(n *Node) bool {
		if n != workspace && n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// ToOutput converts an output node.
func (n *Node) ToOutput() model.Output {
	return model.Output{Name: n.Name, Rect: n.Rect.toModel()}
}

// ToWorkspace converts a workspace node.
func (n *Node) ToWorkspace(output string) model.Workspace {
	return model.Workspace{Name: n.Name, Num: n.Num, Output: output}
}

// ToWindow converts a leaf container.
func (n *Node) ToWindow() model.Window {
	w := model.Window{
		ID:         n.ID,
		Name:       n.Name,
		Rect:       n.Rect.toModel(),
		WindowRect: n.WindowRect.toModel(),
		DecoRect:   n.DecoRect.toModel(),
		Focused:    n.Focused,
	}
	switch {
	case n.AppID != nil:
		w.AppID = *n.AppID
	case n.WindowProperties != nil:
		w.AppID = n.WindowProperties.Class
	}
	return w
}

// count returns the number of nodes in the subtree.
func (n *Node) count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// fromIPC converts a tree returned by the IPC library.
func fromIPC(n *swayipc.Node) *Node {
	out := &Node{
		ID:         int64(n.ID),
		Name:       n.Name,
		Type:       string(n.Type),
		Rect:       rectFromIPC(n.Rect),
		WindowRect: rectFromIPC(n.WindowRect),
		DecoRect:   rectFromIPC(n.DecoRect),
		Focused:    n.Focused,
		AppID:      n.AppID,
	}
	if out.Type == NodeWorkspace {
		out.Num = workspaceNum(n.Name)
	}
	if p := n.WindowProperties; p != nil {
		out.WindowProperties = &WindowProperties{
			Class:    p.Class,
			Instance: p.Instance,
			Title:    p.Title,
		}
	}
	for _, id := range n.Focus {
		out.Focus = append(out.Focus, int64(id))
	}
	for _, c := range n.Nodes {
		out.Nodes = append(out.Nodes, fromIPC(c))
	}
	for _, c := range n.FloatingNodes {
		out.FloatingNodes = append(out.FloatingNodes, fromIPC(c))
	}
	return out
}

func rectFromIPC(r swayipc.Rect) Rect {
	return Rect{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)}
}

// workspaceNum returns the leading number of a workspace name, or -1 for
// named workspaces, the way i3 and sway number them.
func workspaceNum(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return -1
	}
	return n
}
