package api

import (
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ListField     = "list"
	PrefixesField = "prefixes"
	SkippedField  = "skipped"
)

// NewStringList wraps values in a ListValue of strings.
func NewStringList(values []string) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(values))}
	for _, value := range values {
		list.Values = append(list.Values, structpb.NewStringValue(value))
	}
	return list
}

// Strings unwraps a ListValue of strings. ok is false if any element is
// not a string.
func Strings(list *structpb.ListValue) (values []string, ok bool) {
	values = make([]string, 0, len(list.GetValues()))
	for _, value := range list.GetValues() {
		str, isStr := value.GetKind().(*structpb.Value_StringValue)
		if !isStr {
			return nil, false
		}
		values = append(values, str.StringValue)
	}
	return values, true
}

// NewListRequest builds the AddToList and RemoveFromList request.
func NewListRequest(name string, prefixes []string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		ListField:     structpb.NewStringValue(name),
		PrefixesField: structpb.NewListValue(NewStringList(prefixes)),
	}}
}

func ListName(req *structpb.Struct) string {
	return req.GetFields()[ListField].GetStringValue()
}

func ListPrefixes(req *structpb.Struct) ([]string, bool) {
	return Strings(req.GetFields()[PrefixesField].GetListValue())
}

func NewReduceResponse(kept, skipped []string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		PrefixesField: structpb.NewListValue(NewStringList(kept)),
		SkippedField:  structpb.NewListValue(NewStringList(skipped)),
	}}
}

func ReduceResponseFields(resp *structpb.Struct) (kept, skipped []string) {
	kept, _ = Strings(resp.GetFields()[PrefixesField].GetListValue())
	skipped, _ = Strings(resp.GetFields()[SkippedField].GetListValue())
	return kept, skipped
}
