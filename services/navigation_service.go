package services

import (
	"backend-master/models"
	"backend-master/repositories"

	"golang.org/x/exp/slices"
)

// NavNode adalah satu node navigasi hasil shaping untuk frontend.
// Leaf membawa target navigasi, Group membawa children, tidak pernah dua-duanya.
type NavNode interface {
	navNode()
}

type NavIcon struct {
	Icon string `json:"icon"`
}

type NavTarget struct {
	Path string `json:"path,omitempty"`
	Name string `json:"name,omitempty"`
}

type NavLeaf struct {
	Title string     `json:"title"`
	Icon  *NavIcon   `json:"icon,omitempty"`
	To    *NavTarget `json:"to"`
}

type NavGroup struct {
	Title    string    `json:"title"`
	Icon     *NavIcon  `json:"icon,omitempty"`
	Children []NavNode `json:"children"`
}

func (NavLeaf) navNode()  {}
func (NavGroup) navNode() {}

type NavigationService struct {
	repo *repositories.MenuRepository
}

func NewNavigationService(repo *repositories.MenuRepository) *NavigationService {
	return &NavigationService{repo: repo}
}

// MenusForUser membangun tree navigasi untuk satu user:
// role user -> gabungan grant menu -> baris menu aktif -> forest.
// User tanpa role atau tanpa grant menghasilkan forest kosong, bukan error.
func (s *NavigationService) MenusForUser(userID uint) ([]NavNode, error) {
	roleIDs, err := s.repo.RolesOfUser(userID)
	if err != nil {
		return nil, err
	}

	menuIDs, err := s.repo.MenusOfRoles(roleIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ActiveMenusByIDs(menuIDs)
	if err != nil {
		return nil, err
	}

	return BuildNavigationTree(rows), nil
}

type treeNode struct {
	menu     models.Menu
	children []*treeNode
}

// BuildNavigationTree menyusun forest dari baris menu yang sudah lolos filter
// permission dan is_active. Node yang parent-nya tersaring naik jadi root,
// tidak ikut hilang. Id internal tidak pernah keluar dari sini.
func BuildNavigationTree(rows []models.Menu) []NavNode {
	rows = slices.Clone(rows)
	slices.SortStableFunc(rows, func(a, b models.Menu) int {
		pa, pb := uint(0), uint(0)
		if a.ParentID != nil {
			pa = *a.ParentID
		}
		if b.ParentID != nil {
			pb = *b.ParentID
		}
		switch {
		case pa != pb:
			if pa < pb {
				return -1
			}
			return 1
		case a.OrderNo != b.OrderNo:
			return a.OrderNo - b.OrderNo
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	byID := make(map[uint]*treeNode, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &treeNode{menu: rows[i]}
	}

	var roots []*treeNode
	for _, row := range rows {
		node := byID[row.ID]
		pid := row.ParentID
		if pid != nil && byID[*pid] != nil && !onCycle(byID, row.ID) {
			byID[*pid].children = append(byID[*pid].children, node)
		} else {
			roots = append(roots, node)
		}
	}

	out := make([]NavNode, 0, len(roots))
	for _, n := range roots {
		out = append(out, shape(n))
	}
	return out
}

// onCycle menelusuri rantai parent dari satu node. Tabel menus tidak menjamin
// bebas siklus, jadi id yang muncul dua kali dianggap siklus dan node
// dipaksa jadi root supaya tree tetap terbangun.
func onCycle(byID map[uint]*treeNode, startID uint) bool {
	visited := map[uint]bool{startID: true}
	node := byID[startID]
	for node.menu.ParentID != nil {
		parent, ok := byID[*node.menu.ParentID]
		if !ok {
			return false
		}
		if visited[parent.menu.ID] {
			return true
		}
		visited[parent.menu.ID] = true
		node = parent
	}
	return false
}

func shape(n *treeNode) NavNode {
	var icon *NavIcon
	if n.menu.Icon != "" {
		icon = &NavIcon{Icon: n.menu.Icon}
	}

	if len(n.children) > 0 {
		children := make([]NavNode, 0, len(n.children))
		for _, c := range n.children {
			children = append(children, shape(c))
		}
		// node dengan children jadi group, target navigasinya dibuang
		return NavGroup{Title: n.menu.Name, Icon: icon, Children: children}
	}

	to := &NavTarget{}
	switch {
	case n.menu.Path != "":
		to.Path = n.menu.Path
	case n.menu.RouteName != "":
		to.Name = n.menu.RouteName
	default:
		// leaf tanpa tujuan diberi placeholder supaya router frontend tidak pecah
		to.Path = "#"
	}
	return NavLeaf{Title: n.menu.Name, Icon: icon, To: to}
}
