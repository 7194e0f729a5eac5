package profile

// Merge fills server-provided profile data into the default shape.
// The default shape is the authoritative field list: keys the server
// adds on top of it are dropped, keys it omits keep their defaults.
// Sequences from the server are taken verbatim, even when empty;
// nested objects merge recursively. The result never aliases either
// input.
func Merge(defaults map[string]any, serverPartial map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults))
	for key, defaultValue := range defaults {
		serverValue, present := serverPartial[key]
		if !present || serverValue == nil {
			merged[key] = cloneValue(defaultValue)
			continue
		}
		switch defaultTyped := defaultValue.(type) {
		case map[string]any:
			serverTyped, ok := serverValue.(map[string]any)
			if !ok {
				merged[key] = cloneValue(defaultTyped)
				continue
			}
			merged[key] = Merge(defaultTyped, serverTyped)
		case []any:
			serverTyped, ok := serverValue.([]any)
			if !ok {
				merged[key] = cloneValue(defaultTyped)
				continue
			}
			merged[key] = cloneSlice(serverTyped)
		default:
			merged[key] = serverValue
		}
	}
	return merged
}

// Payload wraps a merged profile for the PATCH body. The save path is
// a full replace of the profile sub-document, so this is the identity
// on the profile itself.
func Payload(current map[string]any) map[string]any {
	return map[string]any{"profile": current}
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		cloned := make(map[string]any, len(typed))
		for key, inner := range typed {
			cloned[key] = cloneValue(inner)
		}
		return cloned
	case []any:
		return cloneSlice(typed)
	default:
		return value
	}
}

func cloneSlice(values []any) []any {
	cloned := make([]any, len(values))
	for i, inner := range values {
		cloned[i] = cloneValue(inner)
	}
	return cloned
}
