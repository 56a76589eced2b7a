// Package editable addresses individual leaves of a section configuration.
//
// A Path such as plans[1].features[2] names one string inside a config struct,
// matching struct fields by their yaml tag. Resolve and Set read and write the
// leaf, Leaves enumerates every editable leaf, and TagText/TagLink attach a
// path to a rendered value so markup can expose it through the data-editable
// and data-editable-href attributes. A path taken from a tag always resolves
// against the config it was rendered from.
package editable
