// Package provision ensures the local environment has the runtime's
// dependencies and pretrained model artifacts: the Python package set from
// the requirements manifest, the Vosk speech-recognition model directory,
// and the MobileNet-SSD detection model file. Each resource is guarded by an
// existence check and fetched at most once; a resource that is already
// present is never re-validated. Steps run strictly in order and the first
// failure aborts the run.
package provision
