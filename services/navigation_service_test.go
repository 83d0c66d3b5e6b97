package services

import (
	"testing"

	"backend-master/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuRow(id uint, parentID *uint, name string, orderNo int, icon, path, routeName string) models.Menu {
	return models.Menu{
		ID:        id,
		ParentID:  parentID,
		Name:      name,
		OrderNo:   orderNo,
		Icon:      icon,
		Path:      path,
		RouteName: routeName,
		IsActive:  true,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestBuildNavigationTreeEmpty(t *testing.T) {
	tree := BuildNavigationTree(nil)
	assert.Empty(t, tree)
}

func TestBuildNavigationTreeOrdering(t *testing.T) {
	rows := []models.Menu{
		menuRow(3, nil, "Third", 3, "", "/c", ""),
		menuRow(1, nil, "First", 1, "", "/a", ""),
		menuRow(2, nil, "Second", 2, "", "/b", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 3)

	titles := make([]string, 0, 3)
	for _, n := range tree {
		leaf, ok := n.(NavLeaf)
		require.True(t, ok)
		titles = append(titles, leaf.Title)
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestBuildNavigationTreeTieBreakByID(t *testing.T) {
	rows := []models.Menu{
		menuRow(9, nil, "B", 1, "", "/b", ""),
		menuRow(4, nil, "A", 1, "", "/a", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 2)
	assert.Equal(t, "A", tree[0].(NavLeaf).Title)
	assert.Equal(t, "B", tree[1].(NavLeaf).Title)
}

func TestBuildNavigationTreeGroupAndLeafShape(t *testing.T) {
	rows := []models.Menu{
		menuRow(1, nil, "Master", 1, "tabler-settings", "", ""),
		menuRow(2, uintPtr(1), "Cabang", 1, "tabler-building", "/master/cabang", "master-cabang"),
		menuRow(3, uintPtr(1), "Departemen", 2, "", "", "master-departemen"),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 1)

	group, ok := tree[0].(NavGroup)
	require.True(t, ok)
	assert.Equal(t, "Master", group.Title)
	require.NotNil(t, group.Icon)
	assert.Equal(t, "tabler-settings", group.Icon.Icon)
	require.Len(t, group.Children, 2)

	cabang := group.Children[0].(NavLeaf)
	assert.Equal(t, "Cabang", cabang.Title)
	// path menang atas route name
	assert.Equal(t, "/master/cabang", cabang.To.Path)
	assert.Empty(t, cabang.To.Name)

	departemen := group.Children[1].(NavLeaf)
	assert.Nil(t, departemen.Icon)
	assert.Empty(t, departemen.To.Path)
	assert.Equal(t, "master-departemen", departemen.To.Name)
}

func TestBuildNavigationTreeLeafWithoutTargetGetsPlaceholder(t *testing.T) {
	rows := []models.Menu{
		menuRow(1, nil, "Kosong", 1, "", "", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 1)

	leaf := tree[0].(NavLeaf)
	require.NotNil(t, leaf.To)
	assert.Equal(t, "#", leaf.To.Path)
}

func TestBuildNavigationTreeOrphanPromotedToRoot(t *testing.T) {
	// parent id 99 tidak ada di rows, anaknya tetap tampil sebagai root
	rows := []models.Menu{
		menuRow(1, nil, "Dashboard", 1, "", "/dashboard", ""),
		menuRow(2, uintPtr(99), "Yatim", 2, "", "/yatim", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 2)
	assert.Equal(t, "Dashboard", tree[0].(NavLeaf).Title)
	assert.Equal(t, "Yatim", tree[1].(NavLeaf).Title)
}

func TestBuildNavigationTreeCycleDoesNotHang(t *testing.T) {
	// dua node saling menunjuk sebagai parent
	rows := []models.Menu{
		menuRow(1, uintPtr(2), "A", 1, "", "/a", ""),
		menuRow(2, uintPtr(1), "B", 2, "", "/b", ""),
	}

	tree := BuildNavigationTree(rows)
	assert.Len(t, tree, 2)
}

func TestBuildNavigationTreeSiblingLeafAndGroup(t *testing.T) {
	// grant {1,2,5}, menu 5 anak dari menu 2: hasilnya leaf id 1
	// bersebelahan dengan group id 2 yang berisi satu anak
	rows := []models.Menu{
		menuRow(1, nil, "Dashboard", 1, "", "/dashboard", ""),
		menuRow(2, nil, "Master", 2, "", "", ""),
		menuRow(5, uintPtr(2), "Cabang", 1, "", "/master/cabang", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 2)

	leaf, ok := tree[0].(NavLeaf)
	require.True(t, ok)
	assert.Equal(t, "Dashboard", leaf.Title)

	group, ok := tree[1].(NavGroup)
	require.True(t, ok)
	assert.Equal(t, "Master", group.Title)
	require.Len(t, group.Children, 1)
	assert.Equal(t, "Cabang", group.Children[0].(NavLeaf).Title)
}

func TestBuildNavigationTreeNestedGroups(t *testing.T) {
	rows := []models.Menu{
		menuRow(1, nil, "Master", 1, "", "", ""),
		menuRow(2, uintPtr(1), "Regional", 1, "", "", ""),
		menuRow(3, uintPtr(2), "Provinsi", 1, "", "/master/provinsi", ""),
	}

	tree := BuildNavigationTree(rows)
	require.Len(t, tree, 1)

	master := tree[0].(NavGroup)
	require.Len(t, master.Children, 1)

	regional := master.Children[0].(NavGroup)
	assert.Equal(t, "Regional", regional.Title)
	require.Len(t, regional.Children, 1)
	assert.Equal(t, "Provinsi", regional.Children[0].(NavLeaf).Title)
}
