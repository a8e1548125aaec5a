/*
Package ports defines the driven ports (interfaces) for the Espalier service.

These interfaces decouple the core logic from external implementations,
allowing the service to work with different design sources, caches, and
asset pipelines.

# Key Interfaces

  - DesignSource: Fetches raw design documents (e.g., the Figma REST API).
  - DocumentCache: Caches raw API responses (e.g., Redis).
  - AssetDownloader: Renders and saves node images and image fills locally.
*/
package ports
