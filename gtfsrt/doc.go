// Package gtfsrt fetches and decodes GTFS-Realtime protobuf feeds.
//
// It supports three feed types:
//   - Service Alerts: disruptions and service changes
//   - Trip Updates: real-time arrival/departure predictions
//   - Vehicle Positions: current vehicle locations
//
// The main type is Client, which performs a fresh HTTP fetch per call and
// decodes the protobuf payload into simplified records. Feed contents are
// ephemeral; callers display them and throw them away.
package gtfsrt
