// Package config holds the serving parameters this tool manages and their
// persistence.
//
// ParameterSet is the flat record of vLLM tunables (tensor_parallel_size,
// block_size, max_num_seqs, max_model_len, temperature, top_p). Sets are
// value types: fields change only by applying a Patch, which returns a new
// set. Patch uses pointer fields so partial JSON updates only the named
// fields.
//
// Settings carries process-level configuration (model, endpoint, directories,
// monitor interval) with NEUROTUNE_* environment overrides:
//
//	s := config.Load()
//	fmt.Println(s.MetricsURL())
//
// Store persists parameter sets under the config directory as flat JSON:
//
//	store := config.NewStore(s.ConfigDir)
//	params, found, err := store.LoadCurrent()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !found {
//	    params = config.Default()
//	}
//
// A missing parameter file is not an error; callers get the defaults and a
// false flag. Updates validate before writing, so an invalid patch never
// reaches disk.
package config
