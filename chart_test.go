// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import "testing"

func TestAddChartUnknownKind(t *testing.T) {
	wb := New()
	if _, err := wb.AddChart(ChartKind(99)); err == nil {
		t.Fatal("want error for unknown chart kind")
	}
	if len(wb.charts) != 0 {
		t.Error("failed AddChart must not register a chart")
	}
}

func TestRegisterFormula(t *testing.T) {
	c, err := newChart(ChartLine)
	if err != nil {
		t.Fatal(err)
	}
	c.AddSeries(ChartSeries{
		Name:       "Series literal", // no '!', not registered
		Categories: "Sheet1!$A$1:$A$3",
		Values:     "Sheet1!$B$1:$B$3",
	})
	c.AddSeries(ChartSeries{
		Categories: "Sheet1!$A$1:$A$3", // repeated, one slot
		Values:     "Sheet1!$C$1:$C$3",
	})
	if len(c.formulas) != 3 {
		t.Fatalf("formulas = %v, want 3 entries", c.formulas)
	}
	if c.formulaIDs["Sheet1!$A$1:$A$3"] != 0 {
		t.Errorf("first formula slot = %d, want 0", c.formulaIDs["Sheet1!$A$1:$A$3"])
	}
}

func buildChartWorkbook(t *testing.T) (*Workbook, *Worksheet) {
	t.Helper()
	wb := New()
	ws, err := wb.AddWorksheet("Data")
	if err != nil {
		t.Fatal(err)
	}
	labels := []string{"jan", "feb", "mar"}
	for i, s := range labels {
		if err := ws.WriteString(i, 0, s, nil); err != nil {
			t.Fatal(err)
		}
		if err := ws.WriteNumber(i, 1, float64(i+1)*10, nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := wb.sst.materialize(); err != nil {
		t.Fatal(err)
	}
	return wb, ws
}

func TestAddChartDataResolvesVectors(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	c, _ := wb.AddChart(ChartColumn)
	c.AddSeries(ChartSeries{
		Categories: "Data!$A$1:$A$3",
		Values:     "Data!$B$1:$B$3",
	})
	wb.addChartData()

	cats := c.cachedData("Data!$A$1:$A$3")
	if len(cats) != 3 {
		t.Fatalf("categories = %d values, want 3", len(cats))
	}
	for i, want := range []string{"jan", "feb", "mar"} {
		if cats[i].kind != valueText || cats[i].text != want {
			t.Errorf("cat[%d] = %+v, want text %q", i, cats[i], want)
		}
	}
	vals := c.cachedData("Data!$B$1:$B$3")
	for i, want := range []float64{10, 20, 30} {
		if vals[i].kind != valueNumber || vals[i].num != want {
			t.Errorf("val[%d] = %+v, want %v", i, vals[i], want)
		}
	}
}

func TestAddChartDataSkips2DRange(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	c, _ := wb.AddChart(ChartBar)
	c.AddSeries(ChartSeries{Values: "Data!$A$1:$B$3"})
	wb.addChartData()
	if got := c.cachedData("Data!$A$1:$B$3"); got != nil {
		t.Errorf("2-D range cached %v, want skip", got)
	}
}

func TestAddChartDataSkipsUnknownSheet(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	c, _ := wb.AddChart(ChartBar)
	c.AddSeries(ChartSeries{Values: "Missing!$A$1:$A$2"})
	wb.addChartData()
	if got := c.cachedData("Missing!$A$1:$A$2"); got != nil {
		t.Errorf("unknown sheet cached %v, want skip", got)
	}
}

func TestAddChartDataSharesAcrossCharts(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	a, _ := wb.AddChart(ChartLine)
	b, _ := wb.AddChart(ChartArea)
	a.AddSeries(ChartSeries{Values: "Data!$B$1:$B$3"})
	b.AddSeries(ChartSeries{Values: "Data!$B$1:$B$3"})
	wb.addChartData()

	da := a.cachedData("Data!$B$1:$B$3")
	db := b.cachedData("Data!$B$1:$B$3")
	if len(da) == 0 || len(db) == 0 {
		t.Fatal("both charts should carry cached data")
	}
	if &da[0] != &db[0] {
		t.Error("identical formulas should share one resolved slice per run")
	}
}

func TestAddChartDataLiteralValuesWin(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	c, _ := wb.AddChart(ChartPie)
	c.AddSeries(ChartSeries{
		Values:     "Data!$B$1:$B$3",
		ValuesData: []float64{1, 2, 3},
	})
	wb.addChartData()
	vals := c.cachedData("Data!$B$1:$B$3")
	for i, want := range []float64{1, 2, 3} {
		if vals[i].num != want {
			t.Errorf("val[%d] = %v, want literal %v", i, vals[i].num, want)
		}
	}
}

func TestResolveRangeBlanksRichText(t *testing.T) {
	wb := New()
	ws, err := wb.AddWorksheet("Data")
	if err != nil {
		t.Fatal(err)
	}
	runs := []RichRun{{Text: "bold "}, {Text: "tail"}}
	if err := ws.WriteRichString(0, 0, runs, nil); err != nil {
		t.Fatal(err)
	}
	if err := ws.WriteString(1, 0, "plain", nil); err != nil {
		t.Fatal(err)
	}
	if err := wb.sst.materialize(); err != nil {
		t.Fatal(err)
	}

	vals, ok := wb.resolveRange("Data!$A$1:$A$2")
	if !ok {
		t.Fatal("resolveRange failed")
	}
	if vals[0].kind != valueEmpty {
		t.Errorf("rich cell = %+v, want blanked", vals[0])
	}
	if vals[1].kind != valueText || vals[1].text != "plain" {
		t.Errorf("plain cell = %+v, want text \"plain\"", vals[1])
	}
}

func TestResolveRangeSingleCell(t *testing.T) {
	wb, _ := buildChartWorkbook(t)
	vals, ok := wb.resolveRange("Data!$A$1")
	if !ok || len(vals) != 1 || vals[0].text != "jan" {
		t.Errorf("single cell = %+v ok=%t, want [jan]", vals, ok)
	}
}
