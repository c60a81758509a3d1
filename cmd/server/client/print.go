package client

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
)

func printResponse(resp *structpb.Struct) error {
	if jsonOutput {
		marshaler := protojson.MarshalOptions{
			Indent:          "  ",
			EmitUnpopulated: false,
		}
		jsonBytes, err := marshaler.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	writeSummary(os.Stdout, resp)
	return nil
}

// writeSummary prints the headline fields of a response
func writeSummary(w io.Writer, resp *structpb.Struct) {
	fields := resp.GetFields()

	if c := fields[v1alpha1.FieldCreature].GetStructValue(); c != nil {
		f := c.GetFields()
		fmt.Fprintf(w, "#%d %s\n", int(f["id"].GetNumberValue()), f["name"].GetStringValue())
	}
	if suggestions := fields[v1alpha1.FieldSuggestions].GetListValue(); suggestions != nil {
		fmt.Fprintln(w, "Did you mean:")
		for _, v := range suggestions.GetValues() {
			f := v.GetStructValue().GetFields()
			fmt.Fprintf(w, "  #%d %s\n", int(f["id"].GetNumberValue()), f["name"].GetStringValue())
		}
	}

	page := fields[v1alpha1.FieldPage].GetStructValue().GetFields()
	if page == nil {
		return
	}

	if msg := page["message"].GetStringValue(); msg != "" {
		fmt.Fprintln(w, msg)
		return
	}

	switch page["kind"].GetStringValue() {
	case "gallery":
		cards := page["gallery"].GetStructValue().GetFields()["cards"].GetListValue().GetValues()
		fmt.Fprintf(w, "Gallery: %d creatures\n", len(cards))
	case "detail":
		d := page["detail"].GetStructValue().GetFields()
		fmt.Fprintf(w, "#%d %s\n", int(d["id"].GetNumberValue()), d["name"].GetStringValue())
		fmt.Fprintln(w, d["type_line"].GetStringValue())
		fmt.Fprintln(w, d["measurements"].GetStringValue())
		fmt.Fprintln(w, d["abilities"].GetStringValue())
	case "comparison":
		c := page["comparison"].GetStructValue().GetFields()
		a := c["a"].GetStructValue().GetFields()["name"].GetStringValue()
		b := c["b"].GetStructValue().GetFields()["name"].GetStringValue()
		fmt.Fprintf(w, "%s vs %s\n", a, b)
		fmt.Fprintln(w, c["size_ratio"].GetStringValue())
	}

	if cleared, ok := fields[v1alpha1.FieldCleared]; ok && !cleared.GetBoolValue() {
		fmt.Fprintln(w, "Nothing to reset")
	}
	fmt.Fprintln(w, page["indicator"].GetStringValue())
}
