package application

/* ----------------------------------------
	MENU TREE
---------------------------------------- */

// MenuItem is one entry of a Menu. An item either opens a Submenu or runs
// an Action; an item with neither ends the menu.
type MenuItem struct {
	Label   string
	Submenu *Menu
	Action  func() error
}

type Menu struct {
	Title  string
	Items  []MenuItem
	Parent *Menu
}

// BackLabel is the label that returns to the parent menu.
const BackLabel = "Back"

// ChooseFunc presents options under title and returns the chosen label.
type ChooseFunc func(title string, options []string) (string, error)

func linkParents(menu *Menu, parent *Menu) {
	menu.Parent = parent

	for i := range menu.Items {
		item := &menu.Items[i]

		if item.Label == BackLabel {
			item.Submenu = parent
			continue
		}

		if item.Submenu != nil {
			linkParents(item.Submenu, menu)
		}
	}
}

func (m *Menu) labels() []string {
	out := make([]string, len(m.Items))
	for i, item := range m.Items {
		out[i] = item.Label
	}
	return out
}

func (m *Menu) find(label string) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.Label == label {
			return item, true
		}
	}
	return MenuItem{}, false
}

/* ----------------------------------------
	RUN
---------------------------------------- */

// Run walks the tree from root, asking choose at each level, until an
// action runs or an item without one is picked. The action's error is
// returned as is.
func Run(root *Menu, choose ChooseFunc) error {
	linkParents(root, nil)

	current := root
	for {
		label, err := choose(current.Title, current.labels())
		if err != nil {
			return err
		}

		item, ok := current.find(label)
		if !ok {
			continue
		}

		switch {
		case item.Submenu != nil:
			current = item.Submenu
		case item.Action != nil:
			return item.Action()
		default:
			return nil
		}
	}
}
