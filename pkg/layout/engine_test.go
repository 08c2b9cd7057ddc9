package layout

import (
	"testing"

	"github.com/goliatone/go-formstyle/pkg/model"
)

func declarationOf(entries ...model.Entry) model.Declaration {
	return model.Declaration{Entries: entries}
}

func TestEngine_PlainStackedBlocks(t *testing.T) {
	engine := New()
	decl := declarationOf(text("a", "one"), text("b", "two"), text("c", "three"))

	tree := engine.Layout(decl, model.LayoutContext{ContainerWidth: 1000})

	if len(tree.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(tree.Sections))
	}
	panel := tree.Sections[0].Panel
	rows := panel.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Kind != NodeBlock || row.Label != nil {
			t.Fatalf("expected full-width block without label column, got %+v", row)
		}
	}
	if got := panel.SeparatorCount(); got != 2 {
		t.Fatalf("expected 2 separators, got %d", got)
	}
}

func TestEngine_IndentedSingleItem(t *testing.T) {
	engine := New(WithIndentAll(true))
	decl := declarationOf(text("only", "content"))

	tree := engine.Layout(decl, model.LayoutContext{ContainerWidth: 500})

	rows := tree.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Kind != NodeRow || row.Label == nil {
		t.Fatalf("expected labeled row, got %+v", row)
	}
	if row.Label.Text != "" || row.Label.Width != 150 {
		t.Fatalf("expected empty label of width 150, got %+v", row.Label)
	}
	if !row.Content.Flexible {
		t.Fatalf("content should fill the remaining width")
	}
	if tree.LabelWidth != 150 {
		t.Fatalf("tree label width = %v, want 150", tree.LabelWidth)
	}
}

func TestEngine_NarrowContainer(t *testing.T) {
	engine := New(WithIndentAll(true))
	tree := engine.Layout(declarationOf(text("a", "x")), model.LayoutContext{ContainerWidth: 100})

	if tree.LabelWidth != 30 || tree.Rows()[0].Label.Width != 30 {
		t.Fatalf("expected label width 30, got %v", tree.LabelWidth)
	}
}

func TestEngine_LabelWidthSharedAcrossSections(t *testing.T) {
	engine := New(WithIndentAll(true))
	decl := declarationOf(
		model.Header("One"),
		model.ItemEntry(model.NewItem("name", model.Control{Control: model.ControlInput, Title: "Name"})),
		model.Header("Two"),
		text("b", "plain"),
	)

	tree := engine.Layout(decl, model.LayoutContext{ContainerWidth: 800})
	if len(tree.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(tree.Sections))
	}
	for _, row := range tree.Rows() {
		if row.Label == nil || row.Label.Width != 200 {
			t.Fatalf("expected every row to share width 200, got %+v", row.Label)
		}
	}
}

func TestEngine_UnknownGeometryUsesDefaultWidth(t *testing.T) {
	engine := New()
	tree := engine.Layout(declarationOf(text("a", "x")), model.LayoutContext{})

	if tree.Width != 400 {
		t.Fatalf("expected default width 400, got %v", tree.Width)
	}
	if tree.LabelWidth != 120 {
		t.Fatalf("expected label width 120, got %v", tree.LabelWidth)
	}
	if tree.MinWidth != 300 {
		t.Fatalf("expected min width hint 300, got %v", tree.MinWidth)
	}
}

func TestEngine_EmptyDeclaration(t *testing.T) {
	tree := New().Layout(model.Declaration{}, model.LayoutContext{ContainerWidth: 640})
	if len(tree.Sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(tree.Sections))
	}
}

func TestEngine_Options(t *testing.T) {
	engine := New(
		nil,
		WithStyle(Style{Border: "#000000", CornerRadius: 10}),
		WithWidthPolicy(WidthPolicy{Ratio: 0.5, Max: 100}),
		WithWidthPolicy(WidthPolicy{}),
	)

	style := engine.Style()
	if style.Border != "#000000" || style.CornerRadius != 10 {
		t.Fatalf("style override not applied: %+v", style)
	}
	if style.SectionBackground != DefaultStyle().SectionBackground {
		t.Fatalf("unset fields should keep defaults")
	}

	tree := engine.Layout(declarationOf(text("a", "x")), model.LayoutContext{ContainerWidth: 150})
	if tree.LabelWidth != 75 {
		t.Fatalf("custom policy not applied: %v", tree.LabelWidth)
	}
}
