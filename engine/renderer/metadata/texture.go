package metadata

/**
 * @brief Represents a GPU-resident texture registered under a tag.
 */
type Texture struct {
	/** @brief The human-readable tag the texture is looked up by. */
	Tag string
	/** @brief The opaque GPU handle returned by the backend. */
	Handle uint32
	/** @brief The texture width in pixels. */
	Width uint32
	/** @brief The texture height in pixels. */
	Height uint32
	/** @brief The number of channels in the source image. */
	ChannelCount uint8
}

/**
 * @brief Decoded image data handed from the asset layer to the backend.
 */
type ImageData struct {
	/** @brief The pixel data, packed per ChannelCount (RGB or RGBA). */
	Pixels []uint8
	/** @brief The image width in pixels. */
	Width uint32
	/** @brief The image height in pixels. */
	Height uint32
	/** @brief The number of channels in the pixel data. */
	ChannelCount uint8
}
