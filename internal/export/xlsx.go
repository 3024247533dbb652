package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteWorkbook saves runs to an xlsx file: a summary sheet with one row per
// run, then one sheet per run holding its processes and trace.
func WriteWorkbook(path string, runs []Run) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Run", "Source", "Policy", "Algorithm", "Avg Wait", "Avg TAT", "Avg Response", "Ctx Switch", "Total"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	used := map[string]int{summarySheet: 1}
	for i, run := range runs {
		sheet := sheetName(run, used)

		row := []interface{}{
			run.RunID, run.Source, run.Policy, run.Algorithm,
			run.AvgWaitingTime, run.AvgTurnaroundTime, run.AvgResponseTime,
			run.ContextSwitches, run.TotalTime,
		}
		if err := f.SetSheetRow(summarySheet, cell(1, i+2), &row); err != nil {
			return err
		}

		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
		if err := writeRunSheet(f, sheet, run); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRunSheet(f *excelize.File, sheet string, run Run) error {
	header := []interface{}{"PID", "Arrival", "Burst", "Priority", "Exit", "Turnaround", "Wait", "Start", "Response"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	r := 2
	for _, p := range run.Processes {
		row := []interface{}{p.Number, p.Arrival, p.Burst, optional(p.Priority), p.Exit, p.Turnaround, p.Wait, optional(p.Start), optional(p.Response)}
		if err := f.SetSheetRow(sheet, cell(1, r), &row); err != nil {
			return err
		}
		r++
	}

	r++
	traceHeader := []interface{}{"Start", "End", "Label"}
	if err := f.SetSheetRow(sheet, cell(1, r), &traceHeader); err != nil {
		return err
	}
	for _, t := range run.Trace {
		r++
		row := []interface{}{t.Start, t.End, t.Label}
		if err := f.SetSheetRow(sheet, cell(1, r), &row); err != nil {
			return err
		}
	}
	return nil
}

// sheetName derives a unique sheet name from the policy, numbering repeats.
func sheetName(run Run, used map[string]int) string {
	name := run.Policy
	used[name]++
	if n := used[name]; n > 1 {
		name = fmt.Sprintf("%s-%d", name, n)
	}
	return name
}

func optional(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
