package ssb

// UpdatePayload builds the request body for a job update from the job's
// current configuration and the caller's overrides. The job snapshot is not
// modified; all config blocks are deep-copied before any override is applied,
// so building the same payload twice yields the same value.
func UpdatePayload(job *Job, ov Overrides) map[string]any {
	sql := job.SQL
	if ov.SQL != "" {
		sql = ov.SQL
	}

	mvConfig := cloneMap(job.MvConfig)
	delete(mvConfig, "not_indexed_columns") // not a valid option in the REST API

	runtimeConfig := cloneMap(job.RuntimeConfig)
	if ov.PerJob {
		runtimeConfig["execution_mode"] = ExecutionModePerJob
	} else if ov.Session {
		runtimeConfig["execution_mode"] = ExecutionModeSession
	}
	if ov.Streaming {
		runtimeConfig["runtime_mode"] = RuntimeModeStreaming
	} else if ov.Batch {
		runtimeConfig["runtime_mode"] = RuntimeModeBatch
	}
	if ov.UseSavepoint != nil {
		runtimeConfig["start_with_savepoint"] = *ov.UseSavepoint
	}

	return map[string]any{
		"sql":          sql,
		"mv_endpoints": cloneSlice(job.MvEndpoints),
		"job_config": map[string]any{
			"job_name":          job.Name,
			"autoscaler_config": cloneMap(job.AutoscalerConfig),
			"checkpoint_config": cloneMap(job.CheckpointConfig),
			"kubernetes_config": cloneMap(job.KubernetesConfig),
			"mv_config":         mvConfig,
			"runtime_config":    runtimeConfig,
		},
	}
}

// StopPayload builds the request body for a stop call. A savepoint is taken
// when the caller asks for one or when the job is already configured to
// start from a savepoint.
func StopPayload(job *Job, savepoint bool) map[string]any {
	return map[string]any{
		"savepoint": savepoint || job.StartWithSavepoint(),
	}
}

// cloneMap and cloneSlice cover the value shapes json.Unmarshal produces for
// the opaque config blocks: nested maps, slices and scalars.
func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(in []any) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		return cloneSlice(typed)
	default:
		return v
	}
}
