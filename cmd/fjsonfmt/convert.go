package main

import "github.com/kcenon/go_fjson/fjson"

// valueFromJSON converts the generic interface{} tree encoding/json builds
// (via json.Unmarshal into an interface{}) into an fjson.Value tree. It is
// the CLI's own glue: the core fjson package has no dependency on
// encoding/json, since tokenizing is out of scope for it.
func valueFromJSON(n interface{}) *fjson.Value {
	switch x := n.(type) {
	case nil:
		return nil
	case bool:
		return fjson.NewBool(x)
	case string:
		return fjson.NewString(x)
	case float64:
		return fjson.NewDouble(x)
	case []interface{}:
		arr := fjson.NewArray()
		for _, e := range x {
			child := valueFromJSON(e)
			arr.ArrayAppend(child)
			fjson.Release(child)
		}
		return arr
	case map[string]interface{}:
		obj := fjson.NewObject()
		for k, e := range x {
			child := valueFromJSON(e)
			obj.ObjectSet(k, child)
			fjson.Release(child)
		}
		return obj
	default:
		return nil
	}
}
