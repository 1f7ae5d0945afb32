package llm

import (
	"fmt"
	"strings"
	"time"
)

// BuildPrompt composes the generation instruction for one request: the
// routing knowledge base, the hard rules, the exact CSV layout with the
// current date/time, and the requested quantity. The drawing itself travels
// as an attached document, not in the prompt.
func BuildPrompt(kb *KnowledgeBase, quantity int, now time.Time) string {
	var b strings.Builder

	b.WriteString("You are a manufacturing engineer creating a router for Made2Manage ERP.\n\n")
	writeKnowledge(&b, kb)

	fmt.Fprintf(&b, "\nTASK: Analyze this drawing and generate a router for %d pieces.\n", quantity)

	b.WriteString("\nCRITICAL RULES:\n")
	for i, rule := range kb.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	b.WriteString("\nOUTPUT: Generate M2M Standard Routing Summary in CSV format.\n")
	b.WriteString("\nCSV STRUCTURE (output EXACTLY this format):\n")
	fmt.Fprintf(&b, "Line 1: MAC,,,,,Standard Routing Summary,,,,Page : 1 of 1\n")
	fmt.Fprintf(&b, "Line 2: ,,,,,,,,Date : %s\n", now.Format("01/02/2006"))
	fmt.Fprintf(&b, "Line 3: ,,,,,,,,Time : %s EST\n", now.Format("03:04:05 PM"))
	b.WriteString("Line 4: ,,,,,,,,\n")
	b.WriteString("Line 5: Facility,Part Number,Rev,Description,Unit of Measure,Standard Process Qty,,,\n")
	fmt.Fprintf(&b, "Line 6: Default,[PART# from drawing],0,[DESCRIPTION from drawing],EA,%d.00000,,,\n", quantity)
	b.WriteString("Line 7-8: Empty rows (just commas)\n")
	b.WriteString("Line 9: Op,Work Center,,Operation Qty,Setup Hours,Production Hours,Move Hours,Sub-Contract Costs,Other Costs,Standard Cost/Operation\n")
	b.WriteString("Then for each operation (2 lines):\n")
	fmt.Fprintf(&b, "  Data row: [OP#],[CODE],[DESC],%d.0000,[SETUP],[RUN],0.00,0.00,0.00,0.00\n", quantity)
	b.WriteString("  Instruction row: ,[INSTRUCTION],,,,,,,,\n")
	b.WriteString("  Empty row: ,,,,,,,,\n")
	b.WriteString("After all operations:\n")
	b.WriteString("  Totals,,,,[TOTAL SETUP],[TOTAL RUN],0.00,0.00,0.00,\"$ 0.00\"\n")
	fmt.Fprintf(&b, "  Totals per Unit,,,,[SETUP/%d],[RUN/%d],0.00,0.00,0.00,$ 0.00\n", quantity, quantity)
	b.WriteString("  Empty rows\n")
	b.WriteString("  ,,,,,End of Report,,,,\n")
	b.WriteString("  Empty row\n")
	b.WriteString("  ,,,,,This report was requested by MAC ROUTER GENERATOR,,,,\n")

	b.WriteString("\nRemember:\n")
	b.WriteString("- Read part number and description from the drawing title block\n")
	fmt.Fprintf(&b, "- Calculate run hours: (minutes per piece x %d) / 60\n", quantity)
	b.WriteString("- Keep operations simple and realistic\n")
	b.WriteString("- Output ONLY the CSV (no markdown, no code blocks, no explanation)\n")

	return b.String()
}

func writeKnowledge(b *strings.Builder, kb *KnowledgeBase) {
	b.WriteString("CRITICAL MANUFACTURING RULES:\n\n")

	b.WriteString("Setup Times (ALWAYS use these):\n")
	for _, wc := range kb.WorkCenters {
		fmt.Fprintf(b, "- %s: %s hrs", wc.Code, wc.SetupHours)
		if wc.MoveHours != "" {
			fmt.Fprintf(b, " (ALWAYS %s hrs move time)", wc.MoveHours)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRun Times Per Piece (DO NOT EXCEED):\n")
	for _, wc := range kb.WorkCenters {
		if wc.RunMinutesPerPiece != "" {
			fmt.Fprintf(b, "- %s: %s min/piece\n", wc.Code, wc.RunMinutesPerPiece)
		}
	}

	b.WriteString("\nWork Center Codes:\n")
	for _, wc := range kb.WorkCenters {
		fmt.Fprintf(b, "- %s - %q\n", wc.Code, wc.Name)
	}

	b.WriteString("\nInstructions:\n")
	for _, wc := range kb.WorkCenters {
		fmt.Fprintf(b, "- %s: %q\n", wc.Code, wc.Instruction)
	}

	if len(kb.Examples) > 0 {
		b.WriteString("\nEXAMPLES:\n")
		for _, ex := range kb.Examples {
			desc := ex.Description
			if desc == "" {
				desc = ex.Part
			}
			fmt.Fprintf(b, "Example: %s (%s) - %d pieces\n", desc, ex.Part, ex.Quantity)
			for _, op := range ex.Operations {
				fmt.Fprintf(b, "- %s\n", op)
			}
		}
	}
}
