// Package iomap remaps inference input and output tensors between a
// caller-chosen logical order and the model's physical slot order.
//
// A model assigns its tensors positional indices at build time; callers often
// want to address them by stable signature names or an explicit reordering
// instead. The Mapper materializes either configuration shape into two index
// lists at setup time (UpdateIoMap) and applies them on every inference call.
//
// The two directions deliberately use opposite index conventions:
//
//   - RemapInputTensors scatters: mapped[indices[i]] = batch[i]. The list
//     answers "where does logical slot i live physically".
//   - RemapOutputTensors gathers: mapped[i] = batch[indices[i]]. The list
//     answers "which physical slot holds logical slot i".
//
// Example:
//
//	mapper := iomap.New()
//	err := mapper.UpdateIoMap(iomap.InputOutputConfig{
//	    InputTensorNamesMap: &iomap.TensorNamesMap{
//	        TensorNames: []string{"attention_mask", "input_ids"},
//	    },
//	}, iomap.GetInputOutputTensorNamesFromInterpreter(interp))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mapped, err := mapper.RemapInputTensors(tensor.NewSpan(batch))
package iomap
