package audit

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func Test_checkLine(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name string
		line string
		exp  []Finding
	}{
		{
			name: "unrelated",
			line: `import { Button } from "@/components/ui/button";`,
		},
		{
			name: "arbitrary value on the grid",
			line: `<div className="p-[16px] mt-[0px]">`,
		},
		{
			name: "arbitrary value off the grid",
			line: `<div className="p-[13px] m-[8px] gap-[6px]">`,
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - Arbitrary value [13px] is not a multiple of 4."},
				{Line: 1, Message: "Grid Violation - Arbitrary value [6px] is not a multiple of 4."},
			},
		},
		{
			name: "arbitrary value out of the table",
			line: `<div className="w-[4100px]">`,
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - Arbitrary value [4100px] is not a multiple of 4."},
			},
		},
		{
			name: "digits are reported as written",
			line: `<div className="p-[07px] m-[08px]">`,
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - Arbitrary value [07px] is not a multiple of 4."},
			},
		},
		{
			name: "too large value is skipped",
			line: `<div className="w-[999999999999999999999999999999px]">`,
		},
		{
			name: "only ASCII digits are values",
			line: "<div className=\"p-[１３px]\"> padding: ５px; px-４ py-２",
		},
		{
			name: "declaration off the grid",
			line: "  padding: 13px;",
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - padding value 13px is not a multiple of 4."},
			},
		},
		{
			name: "declaration with a sub property on the grid",
			line: "  margin-top: 16px;",
		},
		{
			name: "declaration with a sub property off the grid",
			line: "  padding-left:10px;",
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - padding value 10px is not a multiple of 4."},
			},
		},
		{
			name: "declaration inside another property name",
			line: "  border-top: 6px solid;",
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - top value 6px is not a multiple of 4."},
			},
		},
		{
			name: "multiple declarations",
			line: "  padding: 13px; gap: 5px;",
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - padding value 13px is not a multiple of 4."},
				{Line: 1, Message: "Grid Violation - gap value 5px is not a multiple of 4."},
			},
		},
		{
			name: "asymmetric padding",
			line: `<div className="px-4 py-2">`,
			exp: []Finding{
				{Line: 1, Message: "Symmetry Violation - Asymmetric padding (px-4 vs py-2)."},
			},
		},
		{
			name: "symmetric padding",
			line: `<div className="px-4 py-4">`,
		},
		{
			name: "only px",
			line: `<div className="px-4">`,
		},
		{
			name: "padding is compared as text",
			line: `<div className="px-4 py-04">`,
			exp: []Finding{
				{Line: 1, Message: "Symmetry Violation - Asymmetric padding (px-4 vs py-04)."},
			},
		},
		{
			name: "first utilities are compared",
			line: `<div className="px-2 py-2 md:px-6 md:py-4">`,
		},
		{
			name: "await in map",
			line: "items.map(async (x) => { await foo(x); })",
			exp: []Finding{
				{Line: 1, Message: "Perf Warning - Possible 'await' in a synchronous-looking loop."},
			},
		},
		{
			name: "await in forEach",
			line: "items.forEach(async (x) => await save(x));",
			exp: []Finding{
				{Line: 1, Message: "Perf Warning - Possible 'await' in a synchronous-looking loop."},
			},
		},
		{
			name: "await in map and forEach is warned once",
			line: "a.map(async (x) => x).ForEach(async (y) => await y)",
			exp: []Finding{
				{Line: 1, Message: "Perf Warning - Possible 'await' in a synchronous-looking loop."},
			},
		},
		{
			name: "await without loop",
			line: "const res = await fetch(url);",
		},
		{
			name: "map without await",
			line: "items.map((x) => x * 2);",
		},
		{
			name: "checks in order",
			line: `<div className="px-4 py-2 mt-[5px]" onClick={() => items.map(async () => await save())}>`,
			exp: []Finding{
				{Line: 1, Message: "Grid Violation - Arbitrary value [5px] is not a multiple of 4."},
				{Line: 1, Message: "Symmetry Violation - Asymmetric padding (px-4 vs py-2)."},
				{Line: 1, Message: "Perf Warning - Possible 'await' in a synchronous-looking loop."},
			},
		},
	}
	logE := logrus.NewEntry(logrus.New())
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := checkLine(logE, 1, d.line)
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func Test_checkLine_grid(t *testing.T) {
	t.Parallel()
	logE := logrus.NewEntry(logrus.New())
	for v := 0; v <= 400; v += 4 {
		for _, line := range []string{
			fmt.Sprintf(`<div className="p-[%dpx]">`, v),
			fmt.Sprintf("gap: %dpx;", v),
		} {
			if got := checkLine(logE, 1, line); len(got) != 0 {
				t.Fatalf("%q: wanted no finding, got %v", line, got)
			}
		}
	}
	for _, v := range []int{1, 2, 13, 401, 404, 4100} {
		for _, line := range []string{
			fmt.Sprintf(`<div className="p-[%dpx]">`, v),
			fmt.Sprintf("gap: %dpx;", v),
		} {
			if got := checkLine(logE, 1, line); len(got) != 1 {
				t.Fatalf("%q: wanted 1 finding, got %v", line, got)
			}
		}
	}
}

func Test_checkLine_lineNumber(t *testing.T) {
	t.Parallel()
	got := checkLine(logrus.NewEntry(logrus.New()), 42, "  padding: 13px;")
	exp := []Finding{
		{Line: 42, Message: "Grid Violation - padding value 13px is not a multiple of 4."},
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatal(diff)
	}
}

func Test_parseValue(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		value string
		exp   uint64
		isErr bool
	}{
		{name: "zero", value: "0", exp: 0},
		{name: "leading zero", value: "016", exp: 16},
		{name: "overflow", value: "999999999999999999999999999999", isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseValue(d.value)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if got != d.exp {
				t.Fatalf("wanted %d, got %d", d.exp, got)
			}
		})
	}
}

func Test_onGrid(t *testing.T) {
	t.Parallel()
	if len(gridValues) != 101 {
		t.Fatalf("wanted 101 values, got %d", len(gridValues))
	}
	for _, v := range []uint64{0, 4, 200, 400} {
		if !onGrid(v) {
			t.Errorf("%d must be on the grid", v)
		}
	}
	for _, v := range []uint64{3, 402, 404, 4100} {
		if onGrid(v) {
			t.Errorf("%d must not be on the grid", v)
		}
	}
}
