// The gasmon gas sensor monitoring system
//
// Features
//
// - Reads the SGX INIR2-ME-100 infrared methane sensor over serial uart
//
// - Resynchronizes on a noisy stream, with bounded polling and timeouts
//
// - Decodes gas concentration, sensor temperature and fault codes
//
// - Publishes readings over MQTT as JSON events
//
// - Alerts on sensor faults, including unrecognised fault codes
//
// - HTTP JSON API for the latest reading
//
// - Lightweight, small memory footprint (runs on the Raspberry Pi)
package gasmon
