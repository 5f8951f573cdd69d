package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// Standard gravity, used by accelerometer channel scaling.
const g0 = 9.80665

// ADC scales for the power node measurements.
const (
	rnhPortScale = (3.3 / 4096) * (63000.0 / 69800.0)
	rnhUmbScale  = 3.3 / 4096
)

// Standard builds the flight telemetry catalogue. The scale and bias values
// are calibration constants of the originating hardware and must match the
// producers byte-for-byte; do not tidy them.
//
// VERS and MPL3 are flagged fixed-length: their producers write a length
// field that cannot be trusted, so framing uses the catalogue size instead.
// The allow-list is historical and exactly these two codes; whether the
// cause was a firmware bug or an intentional omission is not recoverable,
// so it is preserved rather than generalized.
func Standard() *Registry {
	r := New()
	for _, mt := range standardTypes() {
		if err := r.Register(mt); err != nil {
			// The table below is static; a collision is a programming error.
			panic(err)
		}
	}
	return r
}

func standardTypes() []*codec.MessageType {
	be := binary.BigEndian
	le := binary.LittleEndian

	return []*codec.MessageType{
		{
			FourCC: codec.MakeFourCC("SEQN"),
			Name:   "SequenceNo",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Sequence", Type: codec.Uint32},
			),
		},
		{
			FourCC: codec.MakeFourCC("ADIS"),
			Name:   "ADIS16405",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "VCC", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.002418}},
				codec.Field{Name: "Gyro_X", Type: codec.Int16, Units: codec.Units{MKS: "hertz", Scale: 0.05}},
				codec.Field{Name: "Gyro_Y", Type: codec.Int16, Units: codec.Units{MKS: "hertz", Scale: 0.05}},
				codec.Field{Name: "Gyro_Z", Type: codec.Int16, Units: codec.Units{MKS: "hertz", Scale: 0.05}},
				codec.Field{Name: "Acc_X", Type: codec.Int16, Units: codec.Units{MKS: "meter/s/s", Scale: 0.00333 * g0}},
				codec.Field{Name: "Acc_Y", Type: codec.Int16, Units: codec.Units{MKS: "meter/s/s", Scale: 0.00333 * g0}},
				codec.Field{Name: "Acc_Z", Type: codec.Int16, Units: codec.Units{MKS: "meter/s/s", Scale: 0.00333 * g0}},
				codec.Field{Name: "Magn_X", Type: codec.Int16, Units: codec.Units{MKS: "tesla", Scale: 5e-8}},
				codec.Field{Name: "Magn_Y", Type: codec.Int16, Units: codec.Units{MKS: "tesla", Scale: 5e-8}},
				codec.Field{Name: "Magn_Z", Type: codec.Int16, Units: codec.Units{MKS: "tesla", Scale: 5e-8}},
				codec.Field{Name: "Temp", Type: codec.Int16, Units: codec.Units{MKS: "degree c", Scale: 0.14, Bias: 25}},
				codec.Field{Name: "Aux_ADC", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 806}},
			),
		},
		{
			FourCC:      codec.MakeFourCC("MPL3"),
			Name:        "MPL3115A2",
			FixedLength: true,
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Pressure", Type: codec.Uint32, Units: codec.Units{MKS: "kPa", Scale: 1.5625e-5}},
				codec.Field{Name: "Temp", Type: codec.Int16, Units: codec.Units{MKS: "degree c", Scale: 1.0 / 256}},
			),
		},
		{
			FourCC: codec.MakeFourCC("ROLL"),
			Name:   "RollServo",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Angle", Type: codec.Float64},
				codec.Field{Name: "Disable", Type: codec.Uint8},
			),
		},
		{
			FourCC: codec.MakeFourCC("RNHH"),
			Name:   "RNHHealth",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Temperature", Type: codec.Uint16, Units: codec.Units{MKS: "kelvin", Scale: 0.1}},
				codec.Field{Name: "TS1Temperature", Type: codec.Int16, Units: codec.Units{MKS: "degree c", Scale: 0.1}},
				codec.Field{Name: "TS2Temperature", Type: codec.Int16, Units: codec.Units{MKS: "degree c", Scale: 0.1}},
				codec.Field{Name: "TempRange", Type: codec.Uint16},
				codec.Field{Name: "Voltage", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "Current", Type: codec.Int16, Units: codec.Units{MKS: "amp", Scale: 0.001}},
				codec.Field{Name: "AverageCurrent", Type: codec.Int16, Units: codec.Units{MKS: "amp", Scale: 0.001}},
				codec.Field{Name: "CellVoltage1", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "CellVoltage2", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "CellVoltage3", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "CellVoltage4", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "PackVoltage", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
				codec.Field{Name: "AverageVoltage", Type: codec.Uint16, Units: codec.Units{MKS: "volt", Scale: 0.001}},
			),
		},
		{
			FourCC: codec.MakeFourCC("RNHP"),
			Name:   "RNHPower",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Port1", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Port2", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Port3", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Port4", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Umbilical", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhUmbScale}},
				codec.Field{Name: "Port6", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Port7", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
				codec.Field{Name: "Port8", Type: codec.Uint16, Units: codec.Units{MKS: "amp", Scale: rnhPortScale}},
			),
		},
		{
			FourCC: codec.MakeFourCC("RNHU"),
			Name:   "RNHUmbilical",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Detect", Type: codec.Uint8},
			),
		},
		{
			FourCC: codec.MakeFourCC("FCFH"),
			Name:   "FCFHealth",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "CPU_User", Type: codec.Float32},
				codec.Field{Name: "CPU_System", Type: codec.Float32},
				codec.Field{Name: "CPU_Nice", Type: codec.Float32},
				codec.Field{Name: "CPU_IOWait", Type: codec.Float32},
				codec.Field{Name: "CPU_IRQ", Type: codec.Float32},
				codec.Field{Name: "CPU_SoftIRQ", Type: codec.Float32},
				codec.Field{Name: "RAM_Used", Type: codec.Uint64},
				codec.Field{Name: "RAM_Buffer", Type: codec.Uint64},
				codec.Field{Name: "RAM_Cached", Type: codec.Uint64},
				codec.Field{Name: "PID", Type: codec.Uint16},
				codec.Field{Name: "Disk_Used", Type: codec.Uint64},
				codec.Field{Name: "Disk_Read", Type: codec.Uint64},
				codec.Field{Name: "Disk_Write", Type: codec.Uint64},
				codec.Field{Name: "IO_lo_Bytes_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_lo_Bytes_Recv", Type: codec.Uint32},
				codec.Field{Name: "IO_lo_Packets_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_lo_Packets_Recv", Type: codec.Uint32},
				codec.Field{Name: "IO_eth0_Bytes_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_eth0_Bytes_Recv", Type: codec.Uint32},
				codec.Field{Name: "IO_eth0_Packets_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_eth0_Packets_Recv", Type: codec.Uint32},
				codec.Field{Name: "IO_wlan0_Bytes_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_wlan0_Bytes_Recv", Type: codec.Uint32},
				codec.Field{Name: "IO_wlan0_Packets_Sent", Type: codec.Uint32},
				codec.Field{Name: "IO_wlan0_Packets_Recv", Type: codec.Uint32},
				codec.Field{Name: "Core_Temp", Type: codec.Uint16},
			),
		},
		{
			FourCC:      codec.MakeFourCC("VERS"),
			Name:        "Version",
			FixedLength: true,
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Version", Type: codec.Bytes, Size: 17},
			),
		},
		{
			FourCC: codec.MakeFourCC("LTCH"),
			Name:   "LaunchTowerComputer",
			Layout: codec.NewLayout(be,
				codec.Field{Name: "Rocket_Ready", Type: codec.Float32, Units: codec.Units{MKS: "volt"}},
				codec.Field{Name: "Iginition_Relay", Type: codec.Uint8},
				codec.Field{Name: "Ignition_Battery", Type: codec.Float32, Units: codec.Units{MKS: "volt"}},
				codec.Field{Name: "Shore_Power_Relay", Type: codec.Uint8},
				codec.Field{Name: "Shore_Power", Type: codec.Float32, Units: codec.Units{MKS: "volt"}},
				codec.Field{Name: "Solar_Voltage", Type: codec.Float32, Units: codec.Units{MKS: "volt"}},
				codec.Field{Name: "System_Battery", Type: codec.Float32, Units: codec.Units{MKS: "volt"}},
				codec.Field{Name: "Internal_Temp", Type: codec.Float32, Units: codec.Units{MKS: "celsius"}},
				codec.Field{Name: "External_Temp", Type: codec.Float32, Units: codec.Units{MKS: "celsius"}},
				codec.Field{Name: "Humidity", Type: codec.Float32},
				codec.Field{Name: "Wind_Speed", Type: codec.Float32},
				codec.Field{Name: "Wind_Direction", Type: codec.Float32},
				codec.Field{Name: "Barometric_Pressure", Type: codec.Float32},
			),
		},
		{
			FourCC: codec.GPSFourCC(1),
			Name:   "GPSFix",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "Age_Of_Diff", Type: codec.Uint8, Units: codec.Units{MKS: "second"}},
				codec.Field{Name: "Num_Of_Sats", Type: codec.Uint8},
				codec.Field{Name: "GPS_Week", Type: codec.Uint16},
				codec.Field{Name: "GPS_Time_Of_Week", Type: codec.Float64, Units: codec.Units{MKS: "second"}},
				codec.Field{Name: "Latitude", Type: codec.Float64, Units: codec.Units{MKS: "degree"}},
				codec.Field{Name: "Longitude", Type: codec.Float64, Units: codec.Units{MKS: "degree"}},
				codec.Field{Name: "Height", Type: codec.Float32, Units: codec.Units{MKS: "meter"}},
				codec.Field{Name: "VNorth", Type: codec.Float32, Units: codec.Units{MKS: "meter/s"}},
				codec.Field{Name: "VEast", Type: codec.Float32, Units: codec.Units{MKS: "meter/s"}},
				codec.Field{Name: "VUp", Type: codec.Float32, Units: codec.Units{MKS: "meter/s"}},
				codec.Field{Name: "Std_Dev_Resid", Type: codec.Float32, Units: codec.Units{MKS: "meter"}},
				codec.Field{Name: "Nav_Mode", Type: codec.Uint16},
				codec.Field{Name: "Extended_Age_Of_Diff", Type: codec.Uint16, Units: codec.Units{MKS: "second"}},
			),
		},
		{
			FourCC: codec.GPSFourCC(2),
			Name:   "GPSFixQuality",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "Mask_Sats_Tracked", Type: codec.Uint32},
				codec.Field{Name: "Mask_Sats_Used", Type: codec.Uint32},
				codec.Field{Name: "GPS_UTC_Diff", Type: codec.Uint16},
				codec.Field{Name: "HDOP", Type: codec.Uint16, Units: codec.Units{Scale: 10}},
				codec.Field{Name: "VDOP", Type: codec.Uint16, Units: codec.Units{Scale: 10}},
				codec.Field{Name: "Mask_WAAS_PRN", Type: codec.Uint16},
			),
		},
		{
			FourCC: codec.GPSFourCC(80),
			Name:   "GPSWAASMessage",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "PRN", Type: codec.Uint16},
				codec.Field{Name: "Spare", Type: codec.Uint16},
				codec.Field{Name: "Msg_Sec_of_Week", Type: codec.Uint32},
				codec.Field{Name: "Waas_Msg", Type: codec.Bytes, Size: 32},
			),
		},
		{
			FourCC: codec.GPSFourCC(93),
			Name:   "GPSWAASEphemeris",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "SV", Type: codec.Uint16},
				codec.Field{Name: "spare", Type: codec.Uint16},
				codec.Field{Name: "TOW_Sec_of_Week", Type: codec.Uint32},
				codec.Field{Name: "IODE", Type: codec.Uint16},
				codec.Field{Name: "URA", Type: codec.Uint16},
				codec.Field{Name: "T_Zero", Type: codec.Int32},
				codec.Field{Name: "XG", Type: codec.Int32, Units: codec.Units{MKS: "meter", Scale: 0.08}},
				codec.Field{Name: "YG", Type: codec.Int32, Units: codec.Units{MKS: "meter", Scale: 0.08}},
				codec.Field{Name: "ZG", Type: codec.Int32, Units: codec.Units{MKS: "meter", Scale: 0.4}},
				codec.Field{Name: "XG_Dot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s", Scale: 0.000625}},
				codec.Field{Name: "YG_Dot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s", Scale: 0.000625}},
				codec.Field{Name: "ZG_Dot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s", Scale: 0.004}},
				codec.Field{Name: "XG_DotDot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s/s", Scale: 0.0000125}},
				codec.Field{Name: "YG_DotDot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s/s", Scale: 0.0000125}},
				codec.Field{Name: "ZG_DotDot", Type: codec.Int32, Units: codec.Units{MKS: "meter/s/s", Scale: 0.0000625}},
				codec.Field{Name: "Gf_Zero", Type: codec.Uint16},
				codec.Field{Name: "Gf_Zero_Dot", Type: codec.Uint16},
			),
		},
		{
			FourCC: codec.GPSFourCC(94),
			Name:   "GPSIonosphereUTC",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "a0", Type: codec.Float64},
				codec.Field{Name: "a1", Type: codec.Float64},
				codec.Field{Name: "a2", Type: codec.Float64},
				codec.Field{Name: "a3", Type: codec.Float64},
				codec.Field{Name: "b0", Type: codec.Float64},
				codec.Field{Name: "b1", Type: codec.Float64},
				codec.Field{Name: "b2", Type: codec.Float64},
				codec.Field{Name: "b3", Type: codec.Float64},
				codec.Field{Name: "UTC_A0", Type: codec.Float64},
				codec.Field{Name: "UTC_A1", Type: codec.Float64},
				codec.Field{Name: "tot", Type: codec.Uint32},
				codec.Field{Name: "wnt", Type: codec.Uint16},
				codec.Field{Name: "wnlsf", Type: codec.Uint16},
				codec.Field{Name: "dn", Type: codec.Uint16},
				codec.Field{Name: "dtls", Type: codec.Uint16},
				codec.Field{Name: "dtlsf", Type: codec.Uint16},
				codec.Field{Name: "space", Type: codec.Uint16},
			),
		},
		{
			FourCC: codec.GPSFourCC(95),
			Name:   "GPSEphemeris",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "SV", Type: codec.Uint16},
				codec.Field{Name: "spare", Type: codec.Uint16},
				codec.Field{Name: "Sec_of_Week", Type: codec.Uint32},
				codec.Field{Name: "SF1_Words", Type: codec.Bytes, Size: 40},
				codec.Field{Name: "SF2_Words", Type: codec.Bytes, Size: 40},
				codec.Field{Name: "SF3_Words", Type: codec.Bytes, Size: 40},
			),
		},
		{
			// The receiver's misspelling; existing tooling keys on it.
			FourCC: codec.GPSFourCC(96),
			Name:   "GPSPsudorange",
			Layout: codec.NewLayout(le, gpsPseudorangeFields()...),
		},
		{
			FourCC: codec.GPSFourCC(97),
			Name:   "GPSProcessor",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "CPU_Availible", Type: codec.Uint32, Units: codec.Units{MKS: "percent", Scale: 450e-6}},
				codec.Field{Name: "Missed_Sub_Frames", Type: codec.Uint16},
				codec.Field{Name: "Max_Subframe_Queued", Type: codec.Uint16},
				codec.Field{Name: "Missed_Accum", Type: codec.Uint16},
				codec.Field{Name: "Missed_Meas", Type: codec.Uint16},
				codec.Field{Name: "spare1", Type: codec.Uint32},
				codec.Field{Name: "spare2", Type: codec.Uint32},
				codec.Field{Name: "spare3", Type: codec.Uint32},
				codec.Field{Name: "spare4", Type: codec.Uint16},
				codec.Field{Name: "spare5", Type: codec.Uint16},
			),
		},
		{
			FourCC: codec.GPSFourCC(98),
			Name:   "GPSAlmanac",
			Layout: codec.NewLayout(le,
				codec.Field{Name: "Alman_Data", Type: codec.Bytes, Size: 64},
				codec.Field{Name: "Last_Alman", Type: codec.Uint8},
				codec.Field{Name: "IonoUTCV_Flag", Type: codec.Uint8},
				codec.Field{Name: "spare", Type: codec.Uint16},
			),
		},
		{
			FourCC: codec.GPSFourCC(99),
			Name:   "GPSSatellite",
			Layout: codec.NewLayout(le, gpsSatelliteFields()...),
		},
	}
}

// gpsPseudorangeFields builds the GPS96 body: a small header followed by
// per-satellite blocks for the receiver's 12 tracking slots.
func gpsPseudorangeFields() []codec.Field {
	fields := []codec.Field{
		{Name: "spare", Type: codec.Uint16},
		{Name: "Week", Type: codec.Uint16},
		{Name: "TOW", Type: codec.Float64},
	}
	for i := 0; i < 12; i++ {
		fields = append(fields, codec.Field{Name: fmt.Sprintf("UICS_TT_SNR_PRN_%d", i), Type: codec.Uint32})
	}
	for i := 0; i < 12; i++ {
		fields = append(fields, codec.Field{Name: fmt.Sprintf("UIDoppler_FL_%d", i), Type: codec.Uint32})
	}
	for i := 0; i < 12; i++ {
		fields = append(fields, codec.Field{Name: fmt.Sprintf("PseudoRange_%d", i), Type: codec.Float64})
	}
	for i := 0; i < 12; i++ {
		fields = append(fields, codec.Field{Name: fmt.Sprintf("Phase_%d", i), Type: codec.Float64, Units: codec.Units{MKS: "meter"}})
	}
	return fields
}

// gpsSatelliteFields builds the GPS99 body: fix summary plus one tracking
// block per receiver channel.
func gpsSatelliteFields() []codec.Field {
	fields := []codec.Field{
		{Name: "Nav_Mode_2", Type: codec.Uint8},
		{Name: "UTC_Time_Diff", Type: codec.Uint8, Units: codec.Units{MKS: "second"}},
		{Name: "GPS_Week", Type: codec.Uint16},
		{Name: "GPS_Time_of_Week", Type: codec.Float64, Units: codec.Units{MKS: "second"}},
	}
	for ch := 0; ch < 12; ch++ {
		fields = append(fields,
			codec.Field{Name: fmt.Sprintf("Channel_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Tracked_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Status_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Last_Subframe_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Ephm_V_Flag_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Ephm_Health_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Alm_V_Flag_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Alm_Health_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("Elev_Angle_%d", ch), Type: codec.Int8, Units: codec.Units{MKS: "degree"}},
			codec.Field{Name: fmt.Sprintf("Azimuth_Angle_%d", ch), Type: codec.Uint8, Units: codec.Units{MKS: "degree", Scale: 2.0}},
			codec.Field{Name: fmt.Sprintf("URA_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("spare_%d", ch), Type: codec.Uint8},
			codec.Field{Name: fmt.Sprintf("CLI_for_SNR_%d", ch), Type: codec.Uint16},
			codec.Field{Name: fmt.Sprintf("DiffCorr_%d", ch), Type: codec.Int16},
			codec.Field{Name: fmt.Sprintf("Pos_Resid_%d", ch), Type: codec.Int16},
			codec.Field{Name: fmt.Sprintf("Vel_Resid_%d", ch), Type: codec.Int16},
			codec.Field{Name: fmt.Sprintf("Dopplr_%d", ch), Type: codec.Int16},
			codec.Field{Name: fmt.Sprintf("N_Carr_Offset_%d", ch), Type: codec.Int16},
		)
	}
	return append(fields,
		codec.Field{Name: "Clock_Err_L1", Type: codec.Int16},
		codec.Field{Name: "spare", Type: codec.Uint16},
	)
}
